// Package storage elige el backend de blobs según storage.driver.
package storage

import (
	"context"
	"fmt"
	"io"

	"purrlog/internal/adapters/storage/filesystem"
	"purrlog/internal/adapters/storage/memory"
	"purrlog/internal/adapters/storage/postgres"
	"purrlog/internal/adapters/storage/s3"
	"purrlog/internal/adapters/storage/sqlite"
	"purrlog/internal/config"
	"purrlog/internal/ports/blobstore"
)

// Open construye el Store configurado. El io.Closer liberado al apagar
// puede ser no-op (memory, fs, s3).
func Open(ctx context.Context, cfg config.StorageConfig) (blobstore.Store, io.Closer, error) {
	switch blobstore.Driver(cfg.Driver) {
	case blobstore.DriverMemory, "":
		return memory.NewBlobStore(), nopCloser{}, nil
	case blobstore.DriverFilesystem:
		s, err := filesystem.New(cfg.FSRoot)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case blobstore.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case blobstore.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.PostgresDSN.Value())
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		s, err := postgres.NewBlobStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return s, s, nil
	case blobstore.DriverS3:
		s, err := s3.New(ctx, s3.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidDriver, cfg.Driver)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
