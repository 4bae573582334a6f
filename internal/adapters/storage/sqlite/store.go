package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver sqlite en go puro

	"purrlog/internal/ports/blobstore"
)

// Store guarda blobs en una tabla kv_blobs de un archivo SQLite.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path. ":memory:" sirve para tests.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "purrlog.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// una sola conexión: ":memory:" es por conexión y sqlite serializa escrituras igual
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv_blobs (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv_blobs: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Driver() blobstore.Driver { return blobstore.DriverSQLite }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM kv_blobs WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blobstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select blob: %w", err)
	}
	return payload, nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv_blobs(key, payload, updated_at)
		VALUES(?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		ON CONFLICT(key) DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at`, key, data)
	if err != nil {
		return fmt.Errorf("upsert blob: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
