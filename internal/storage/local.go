package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalStorage writes images under a public uploads directory served
// statically by the HTTP layer.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalStorage) Save(ctx context.Context, ext string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Printf("[UPLOAD] Save: failed to create directory %s: %v", s.dir, err)
		return "", err
	}

	filename := primitive.NewObjectID().Hex() + ext
	fullPath := filepath.Join(s.dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		log.Printf("[UPLOAD] Save: failed to create file %s: %v", fullPath, err)
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		log.Printf("[UPLOAD] Save: failed to save file %s: %v", fullPath, err)
		return "", err
	}
	if err := ctx.Err(); err != nil {
		_ = os.Remove(fullPath)
		return "", err
	}

	return s.baseURL + "/uploads/" + filename, nil
}

// Remove deletes a previously saved image. It accepts either the public URL
// returned by Save or a bare filename, and refuses any path that would land
// outside the uploads directory.
func (s *LocalStorage) Remove(ctx context.Context, fileRef string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(fileRef)
	if trimmed == "" {
		return nil
	}
	trimmed = strings.TrimPrefix(trimmed, s.baseURL)
	trimmed = strings.TrimPrefix(trimmed, "/uploads/")

	cleanRel := path.Clean("/" + trimmed)
	cleanRel = strings.TrimPrefix(cleanRel, "/")
	if cleanRel == "" || strings.Contains(cleanRel, "/") {
		return fmt.Errorf("refusing to delete non-upload path: %s", fileRef)
	}

	cleanBase := filepath.Clean(s.dir)
	target := filepath.Clean(filepath.Join(cleanBase, cleanRel))
	if !strings.HasPrefix(target, cleanBase+string(os.PathSeparator)) {
		return fmt.Errorf("refusing to delete path outside uploads dir: %s", fileRef)
	}

	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}
