package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StorageService is the photo-upload collaborator. The account service falls
// back to recording a device-local reference when Save fails.
type StorageService interface {
	Save(filename string, r io.Reader) (string, error)
}

type diskStorage struct {
	dir     string
	baseURL string
}

// NewDiskStorage stores uploads under dir and returns URLs rooted at
// baseURL, e.g. "/uploads".
func NewDiskStorage(dir string, baseURL string) (StorageService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (d *diskStorage) Save(filename string, r io.Reader) (string, error) {
	// Only the base name; callers cannot escape the upload dir.
	name := filepath.Base(filename)

	f, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return d.baseURL + "/" + name, nil
}
