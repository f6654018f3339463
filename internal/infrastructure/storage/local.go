// Package storage persists uploaded event photos on the local
// filesystem. Files are stored under a flat uploads directory with
// generated names; only the stored filename is kept on the event
// record, URL resolution happens in the transport layer.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type LocalStorage struct {
	basePath string
}

// NewLocalStorage ensures basePath exists and returns a store rooted there.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the directory files are written to, for static serving.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// Save writes the uploaded file under a collision-free generated name
// and returns that stored filename. A nil header means no file was
// attached and yields an empty name without error.
func (ls *LocalStorage) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(fh.Filename)
	dstPath := filepath.Join(ls.basePath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("write %s: %w", dstPath, err)
	}

	return name, nil
}
