// Package persistence serializa colecciones completas a un blobstore.Store.
// No conoce la semántica de las entidades: recibe snapshots y devuelve blobs
// decodificados.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"purrlog/internal/platform/logger"
	"purrlog/internal/ports/blobstore"
)

// Load decodifica el blob en key. Clave ausente, lectura fallida, JSON
// inválido o validate != nil devuelven def; nunca se propaga error.
func Load[T any](ctx context.Context, store blobstore.Store, log logger.Logger, key string, def T, validate func(T) error) T {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, blobstore.ErrNotFound) {
		return def
	}
	if err != nil {
		log.Warn("storage read failed, using default", map[string]any{"key": key, "err": err})
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("corrupt blob, using default", map[string]any{"key": key, "err": err})
		return def
	}
	if validate != nil {
		if err := validate(v); err != nil {
			log.Warn("blob failed validation, using default", map[string]any{"key": key, "err": err})
			return def
		}
	}
	return v
}

// Save serializa y escribe. Los errores se propagan al llamador.
func Save[T any](ctx context.Context, store blobstore.Store, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := store.Put(ctx, key, b); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
