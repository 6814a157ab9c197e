package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Store persists uploaded files and returns the public path they are served
// under.
type Store interface {
	Save(originalName string, src io.Reader) (string, error)
}

// DiskStore writes uploads to a local directory served statically under
// /uploads. Files are named by receive timestamp plus the original extension,
// mirroring how paths are referenced from stored documents.
type DiskStore struct {
	Dir string
}

func NewDiskStore() (*DiskStore, error) {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskStore{Dir: dir}, nil
}

func (s *DiskStore) Save(originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return "/uploads/" + name, nil
}
