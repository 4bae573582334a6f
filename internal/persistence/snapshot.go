package persistence

import (
	"context"
	"strings"

	"purrlog/internal/domain/logs"
	"purrlog/internal/domain/pets"
	"purrlog/internal/platform/logger"
	"purrlog/internal/platform/metrics"
	"purrlog/internal/ports/blobstore"
)

// Snapshotter persiste cada colección de un workspace bajo su propia clave.
// Una colección vacía (o id vacío) nunca se escribe: así un estado vacío
// transitorio no pisa lo guardado antes.
type Snapshotter struct {
	store blobstore.Store
	keys  Keys
	log   logger.Logger
}

func NewSnapshotter(store blobstore.Store, keys Keys, log logger.Logger) *Snapshotter {
	if log == nil {
		log = logger.Nop()
	}
	return &Snapshotter{store: store, keys: keys, log: log}
}

func (s *Snapshotter) Pets(ctx context.Context, list []pets.Profile) error {
	if len(list) == 0 {
		return s.skip(CollectionPets)
	}
	return s.save(ctx, CollectionPets, s.keys.Pets, list)
}

func (s *Snapshotter) Entries(ctx context.Context, list []logs.Entry) error {
	if len(list) == 0 {
		return s.skip(CollectionEntries)
	}
	return s.save(ctx, CollectionEntries, s.keys.Entries, list)
}

func (s *Snapshotter) ActivePet(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return s.skip(CollectionActivePet)
	}
	return s.save(ctx, CollectionActivePet, s.keys.ActivePet, id)
}

func (s *Snapshotter) skip(collection string) error {
	metrics.PersistenceWrites.WithLabelValues(collection, metrics.WriteSkippedEmpty).Inc()
	s.log.Debug("skip persisting empty collection", map[string]any{"collection": collection})
	return nil
}

func (s *Snapshotter) save(ctx context.Context, collection, key string, v any) error {
	if err := Save(ctx, s.store, key, v); err != nil {
		metrics.PersistenceWrites.WithLabelValues(collection, metrics.WriteError).Inc()
		s.log.Error("snapshot write failed", map[string]any{"collection": collection, "key": key, "err": err})
		return err
	}
	metrics.PersistenceWrites.WithLabelValues(collection, metrics.WriteSaved).Inc()
	return nil
}

// Loaded es el estado persistido de un workspace, ya con defaults aplicados.
type Loaded struct {
	Pets      []pets.Profile
	Entries   []logs.Entry
	ActivePet string
}

// LoadWorkspace lee las tres colecciones. Cada una cae a su default por separado.
func LoadWorkspace(ctx context.Context, store blobstore.Store, keys Keys, log logger.Logger) Loaded {
	if log == nil {
		log = logger.Nop()
	}
	profiles := Load(ctx, store, log, keys.Pets, pets.Defaults(), pets.Validate)
	if len(profiles) == 0 {
		profiles = pets.Defaults()
	}
	entries := Load(ctx, store, log, keys.Entries, []logs.Entry{}, logs.Validate)
	if entries == nil {
		entries = []logs.Entry{}
	}
	active := Load(ctx, store, log, keys.ActivePet, "", nil)
	return Loaded{Pets: profiles, Entries: entries, ActivePet: active}
}
