package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
)

// InMemoryConfig contains configuration for the in-memory catalog repository.
type InMemoryConfig struct {
	// Clock decides expiry (optional, defaults to the real clock)
	Clock clock.Clock
	// TTL of a stored catalog; zero or less keeps entries for the process lifetime
	TTL time.Duration
}

type entry struct {
	names     []string
	fetchedAt time.Time
}

// InMemoryRepository implements Repository for a single process
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entry
	clock clock.Clock
	ttl   time.Duration
}

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &InMemoryRepository{
		store: make(map[string]*entry),
		clock: c,
		ttl:   cfg.TTL,
	}
}

// Get retrieves the names for a scope
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	r.mu.RLock()
	e, exists := r.store[input.Scope]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("catalog for scope %s not found", input.Scope)
	}

	if clock.Expired(r.clock, e.fetchedAt, r.ttl) {
		r.mu.Lock()
		// another writer may have replaced the entry meanwhile
		if current, ok := r.store[input.Scope]; ok && current == e {
			delete(r.store, input.Scope)
		}
		r.mu.Unlock()
		return nil, errors.NotFoundf("catalog for scope %s expired", input.Scope)
	}

	return &GetOutput{
		Scope:     input.Scope,
		Names:     copyNames(e.names),
		FetchedAt: e.fetchedAt,
	}, nil
}

// Put stores names for a scope
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Scope] = &entry{
		names:     copyNames(input.Names),
		fetchedAt: now,
	}

	return &PutOutput{
		Scope:     input.Scope,
		FetchedAt: now,
		ExpiresAt: expiresAt(now, r.ttl),
	}, nil
}

// Invalidate drops the entry for a scope
func (r *InMemoryRepository) Invalidate(_ context.Context, input InvalidateInput) (*InvalidateOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.store[input.Scope]
	delete(r.store, input.Scope)

	return &InvalidateOutput{Existed: existed}, nil
}
