package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:5000/")

	url, err := s.Save(context.Background(), ".jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:5000/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	filename := url[strings.LastIndex(url, "/")+1:]
	content, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))
}

func TestLocalStorageSaveGeneratesUniqueNames(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:5000")

	first, err := s.Save(context.Background(), ".png", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := s.Save(context.Background(), ".png", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStorageSaveCanceledContext(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:5000")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, ".jpg", strings.NewReader("image bytes"))
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStorageRemoveCanceledContext(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:5000")

	url, err := s.Save(context.Background(), ".jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Remove(ctx, url), context.Canceled)

	filename := url[strings.LastIndex(url, "/")+1:]
	_, err = os.Stat(filepath.Join(dir, filename))
	assert.NoError(t, err)
}

func TestLocalStorageRemove(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:5000")

	url, err := s.Save(context.Background(), ".jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(context.Background(), url))

	filename := url[strings.LastIndex(url, "/")+1:]
	_, err = os.Stat(filepath.Join(dir, filename))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageRemoveMissingFileIsNoop(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "http://localhost:5000")
	assert.NoError(t, s.Remove(context.Background(), "http://localhost:5000/uploads/gone.jpg"))
}

func TestLocalStorageRemoveRefusesTraversal(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "http://localhost:5000")
	err := s.Remove(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}
