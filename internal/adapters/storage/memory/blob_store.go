package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"purrlog/internal/ports/blobstore"
)

var errEmptyKey = errors.New("blob key required")

// BlobStore guarda blobs en un map (dev/tests). Se pierde al reiniciar.
type BlobStore struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

func NewBlobStore() *BlobStore {
	return &BlobStore{
		byKey: make(map[string][]byte),
	}
}

func (s *BlobStore) Driver() blobstore.Driver { return blobstore.DriverMemory }

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byKey[key]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKey[key] = cp
	return nil
}
