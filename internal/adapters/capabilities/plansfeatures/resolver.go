package plansfeatures

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

const defaultCacheTTL = time.Minute

// Resolver implementa capabilities.Resolver con cache corta por usuario.
type Resolver struct {
	client   *Client
	allowAll bool
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]cached
}

type cached struct {
	caps    map[string]bool
	expires time.Time
}

// NewResolver: con allowAll todo devuelve true sin llamar upstream (dev).
func NewResolver(client *Client, allowAll bool) *Resolver {
	return &Resolver{
		client:   client,
		allowAll: allowAll,
		ttl:      defaultCacheTTL,
		now:      time.Now,
		cache:    make(map[string]cached),
	}
}

func (r *Resolver) Has(ctx context.Context, userID, capability string) (bool, error) {
	capability = strings.TrimSpace(capability)
	if capability == "" {
		return false, errors.New("capability required")
	}
	if r.allowAll {
		return true, nil
	}
	caps, err := r.Resolve(ctx, userID)
	if err != nil {
		return false, err
	}
	return caps[capability] || caps["*"], nil
}

// Resolve devuelve el mapa completo de capabilities para userID.
func (r *Resolver) Resolve(ctx context.Context, userID string) (map[string]bool, error) {
	if r.allowAll {
		return map[string]bool{"*": true}, nil
	}
	if r.client == nil {
		return nil, ErrPlansNotConfigured
	}

	r.mu.Lock()
	c, ok := r.cache[userID]
	r.mu.Unlock()
	if ok && r.now().Before(c.expires) {
		return c.caps, nil
	}

	resp, err := r.client.GetCapabilities(ctx, userID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[userID] = cached{caps: resp.Capabilities, expires: r.now().Add(r.ttl)}
	r.mu.Unlock()
	return resp.Capabilities, nil
}
