// Package storage persists uploaded ticket attachments on local disk.
// Files are renamed with a timestamp prefix to avoid collisions; only
// the resulting paths are handed back for persistence.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrFileTooLarge is returned before anything is written when an
// upload exceeds the per-file limit.
var ErrFileTooLarge = fmt.Errorf("file exceeds maximum allowed size")

type LocalStore struct {
	dir         string
	maxFileSize int64
}

func NewLocalStore(dir string, maxFileSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStore{
		dir:         dir,
		maxFileSize: maxFileSize,
	}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

// Save streams one uploaded file to the upload directory and returns
// its stored path. The size limit is checked against the reported
// header size before any bytes are written.
func (s *LocalStore) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.maxFileSize {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, fileHeader.Filename, fileHeader.Size)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fileHeader.Filename))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}

	return path, nil
}

// SaveAll stores every file and returns their paths. The first failure
// aborts; files already written stay on disk.
func (s *LocalStore) SaveAll(fileHeaders []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		path, err := s.Save(fh)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// sanitizeFilename strips directory components and path separators so
// a crafted filename cannot escape the upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	if name == "." || name == ".." || name == "" {
		return "attachment"
	}
	return name
}
