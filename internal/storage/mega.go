package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/t3rm1n4l/go-mega"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MegaStorage stores images in a Mega cloud folder and returns public links,
// so recipe file references point at the CDN rather than this server.
type MegaStorage struct {
	client *mega.Mega
	folder *mega.Node
}

func NewMegaStorage(login, password, folderName string) (*MegaStorage, error) {
	client := mega.New()
	if err := client.Login(login, password); err != nil {
		log.Println("[UPLOAD] [ERROR] mega login failed:", err)
		return nil, err
	}

	root := client.FS.GetRoot()
	children, err := client.FS.GetChildren(root)
	if err != nil {
		log.Println("[UPLOAD] [ERROR] mega root listing failed:", err)
		return nil, err
	}

	var folder *mega.Node
	for _, child := range children {
		if child.GetName() == folderName {
			folder = child
			break
		}
	}
	if folder == nil {
		return nil, fmt.Errorf("mega folder %q not found", folderName)
	}

	return &MegaStorage{client: client, folder: folder}, nil
}

// Save stages the image in a temporary file because the Mega client uploads
// from a local path, then publishes it and returns the public link.
func (s *MegaStorage) Save(ctx context.Context, ext string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename := primitive.NewObjectID().Hex() + ext

	tmp, err := os.CreateTemp("", "recipebook-upload-*"+ext)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	node, err := s.client.UploadFile(tmp.Name(), s.folder, filename, nil)
	if err != nil {
		log.Println("[UPLOAD] [ERROR] mega upload failed:", err)
		return "", err
	}

	select {
	case <-ctx.Done():
		_ = s.client.Delete(node, true)
		return "", ctx.Err()
	default:
	}

	link, err := s.client.Link(node, true)
	if err != nil {
		log.Println("[UPLOAD] [ERROR] mega link failed:", err)
		return "", err
	}
	return link, nil
}

func (s *MegaStorage) Remove(ctx context.Context, fileRef string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	node, err := s.findByName(fileRef)
	if err != nil {
		return err
	}
	if node == nil {
		return nil
	}
	return s.client.Delete(node, true)
}

func (s *MegaStorage) findByName(name string) (*mega.Node, error) {
	if name == "" {
		return nil, errors.New("empty file reference")
	}
	children, err := s.client.FS.GetChildren(s.folder)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if child.GetName() == name {
			return child, nil
		}
	}
	return nil, nil
}
