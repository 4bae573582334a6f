package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"purrlog/internal/assistant"
	"purrlog/internal/persistence"
	"purrlog/internal/platform/logger"
	"purrlog/internal/ports/blobstore"
)

type WorkspacesConfig struct {
	Store            blobstore.Store
	KeyPrefix        string
	Generator        assistant.Generator
	Location         *time.Location
	Logger           logger.Logger
	AssistantTimeout time.Duration
	Now              func() time.Time
}

// Workspaces abre un Shell por usuario la primera vez que se lo pide.
type Workspaces struct {
	cfg WorkspacesConfig

	mu     sync.RWMutex
	shells map[string]*Shell
	group  singleflight.Group
}

func NewWorkspaces(cfg WorkspacesConfig) *Workspaces {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &Workspaces{
		cfg:    cfg,
		shells: make(map[string]*Shell),
	}
}

// Get devuelve el workspace de userID, cargándolo si hace falta. Cargas
// concurrentes del mismo usuario comparten un único Open.
func (w *Workspaces) Get(ctx context.Context, userID string) (*Shell, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	w.mu.RLock()
	s, ok := w.shells[userID]
	w.mu.RUnlock()
	if ok {
		return s, nil
	}

	v, err, _ := w.group.Do(userID, func() (any, error) {
		w.mu.RLock()
		existing, ok := w.shells[userID]
		w.mu.RUnlock()
		if ok {
			return existing, nil
		}

		opened := Open(context.WithoutCancel(ctx), Deps{
			Store:            w.cfg.Store,
			Keys:             persistence.KeysFor(w.cfg.KeyPrefix, userID),
			Generator:        w.cfg.Generator,
			Location:         w.cfg.Location,
			Logger:           w.cfg.Logger.With(map[string]any{"user_id": userID}),
			AssistantTimeout: w.cfg.AssistantTimeout,
			Now:              w.cfg.Now,
		})

		w.mu.Lock()
		w.shells[userID] = opened
		w.mu.Unlock()
		return opened, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Shell), nil
}

func (w *Workspaces) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.shells)
}
