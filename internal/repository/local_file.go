package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileRepository stores uploads on disk. Used when S3 is disabled; the
// server mounts the directory under /uploads.
type LocalFileRepository struct {
	dir     string
	baseURL string
}

// NewLocalFileRepository creates dir if needed
func NewLocalFileRepository(dir, baseURL string) (*LocalFileRepository, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalFileRepository{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (r *LocalFileRepository) Upload(ctx context.Context, data []byte, key string, contentType string) (string, error) {
	clean := filepath.Clean("/" + key)
	path := filepath.Join(r.dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return r.baseURL + filepath.ToSlash(clean), nil
}
