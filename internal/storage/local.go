package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Local writes uploads to a directory served statically under publicPath.
type Local struct {
	dir        string
	publicPath string
}

func NewLocal(dir, publicPath string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &Local{dir: dir, publicPath: publicPath}, nil
}

func (l *Local) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := objectName(originalName)
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return path.Join(l.publicPath, name), nil
}

// Dir is the directory uploads are written to.
func (l *Local) Dir() string {
	return l.dir
}
