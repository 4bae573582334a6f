package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purrlog/internal/config"
	"purrlog/internal/ports/blobstore"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cases := []struct {
		cfg  config.StorageConfig
		want blobstore.Driver
	}{
		{config.StorageConfig{Driver: "memory"}, blobstore.DriverMemory},
		{config.StorageConfig{Driver: "fs", FSRoot: filepath.Join(dir, "fs")}, blobstore.DriverFilesystem},
		{config.StorageConfig{Driver: "sqlite", SQLitePath: filepath.Join(dir, "db", "p.db")}, blobstore.DriverSQLite},
	}
	for _, tc := range cases {
		s, closer, err := Open(ctx, tc.cfg)
		require.NoError(t, err, tc.cfg.Driver)
		assert.Equal(t, tc.want, s.Driver())

		require.NoError(t, s.Put(ctx, "k/v", []byte("1")))
		got, err := s.Get(ctx, "k/v")
		require.NoError(t, err)
		assert.Equal(t, "1", string(got))
		assert.NoError(t, closer.Close())
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), config.StorageConfig{Driver: "redis"})
	assert.ErrorIs(t, err, config.ErrInvalidDriver)
}
