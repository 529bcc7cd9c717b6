// Package storage persists uploaded product images and returns their public URLs.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"silktouch/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage stores an uploaded file and returns the URL it is served from.
type Storage interface {
	Save(ctx context.Context, originalName, contentType string, data []byte) (string, error)
}

// New builds the storage driver selected by configuration.
func New(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (Storage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocal(cfg.Dir, cfg.PublicPath)
	case "s3":
		s, err := NewS3(ctx, cfg, WithLogger(log))
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// objectName derives a unique, timestamped name that keeps the upload's extension.
func objectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
