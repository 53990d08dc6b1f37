// Package catalog provides the interface for caching the pokemon name catalog
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/pokedex/internal/repositories/catalog Repository

import (
	"context"
	"time"
)

// DefaultScope is the scope shared by every caller that does not pick one
const DefaultScope = "global"

// DefaultTTL is how long a stored catalog stays valid when no TTL is configured
const DefaultTTL = 24 * time.Hour

// Repository caches the ordered list of pokemon names under a scope.
//
// An entry stops being served when its TTL elapses, when Invalidate is called
// for its scope, or (in-memory only) when the process exits.
type Repository interface {
	// Get retrieves the cached names for a scope
	// Returns errors.InvalidArgument for an empty scope
	// Returns errors.NotFound if nothing is cached or the entry expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores names for a scope, replacing any existing entry
	// Order is preserved exactly as given
	// Returns errors.InvalidArgument for an empty scope
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Invalidate drops the entry for a scope
	// Invalidating a scope with no entry is not an error
	Invalidate(ctx context.Context, input InvalidateInput) (*InvalidateOutput, error)
}

// GetInput defines the input for reading a cached catalog
type GetInput struct {
	Scope string
}

// GetOutput defines the output for reading a cached catalog
type GetOutput struct {
	Scope     string
	Names     []string
	FetchedAt time.Time
}

// PutInput defines the input for storing a catalog
type PutInput struct {
	Scope string
	Names []string
}

// PutOutput defines the output for storing a catalog
type PutOutput struct {
	Scope     string
	FetchedAt time.Time
	// ExpiresAt is zero when the entry never expires
	ExpiresAt time.Time
}

// InvalidateInput defines the input for dropping a catalog
type InvalidateInput struct {
	Scope string
}

// InvalidateOutput defines the output for dropping a catalog
type InvalidateOutput struct {
	// Existed is true when an entry was removed
	Existed bool
}

func expiresAt(fetchedAt time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return fetchedAt.Add(ttl)
}

func copyNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
