package storage

import (
	"context"
	"fmt"

	"github.com/lite-lake/zonevault/internal/config"
)

// NewStore builds the configured object store.
func NewStore(ctx context.Context, cfg *config.StorageConfig) (ObjectStore, error) {
	switch cfg.Type {
	case "s3":
		return NewS3Store(ctx, cfg.Bucket, cfg.Region)
	case "sftp":
		return NewSFTPStore(&cfg.SFTP)
	case "local":
		return NewLocalStore(cfg.Dir)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
