package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"purrlog/internal/ports/blobstore"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv_blobs (
		key        TEXT PRIMARY KEY,
		payload    BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// BlobStore guarda cada clave como una fila de kv_blobs.
type BlobStore struct {
	db *sql.DB
}

// NewBlobStore crea la tabla si no existe.
func NewBlobStore(ctx context.Context, db *sql.DB) (*BlobStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create kv_blobs: %w", err)
	}
	return &BlobStore{db: db}, nil
}

func (s *BlobStore) Driver() blobstore.Driver { return blobstore.DriverPostgres }

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM kv_blobs WHERE key = $1
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blobstore.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_blobs (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload,
		    updated_at = EXCLUDED.updated_at
	`, key, data)
	return err
}

func (s *BlobStore) Close() error { return s.db.Close() }
