package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokedex/internal/redis"
)

const (
	catalogKeyPrefix = "catalog:names:"

	// Error messages
	errScopeEmpty = "scope cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
	// Clock stamps FetchedAt (optional, defaults to the real clock)
	Clock clock.Clock
	// TTL of a stored catalog; zero or less stores without expiry
	TTL time.Duration
}

// Validate validates the RedisConfig and sets defaults.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// catalogData is the storage structure serialized to Redis
type catalogData struct {
	Names     []string `json:"names"`
	FetchedAt int64    `json:"fetched_at"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.Scope)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("catalog for scope %s not found", input.Scope)
		}
		return nil, errors.Wrapf(err, "failed to get catalog for scope %s", input.Scope)
	}

	var data catalogData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal catalog data")
	}

	return &GetOutput{
		Scope:     input.Scope,
		Names:     data.Names,
		FetchedAt: time.Unix(data.FetchedAt, 0),
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	now := r.clock.Now()
	data := catalogData{
		Names:     copyNames(input.Names),
		FetchedAt: now.Unix(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal catalog data")
	}

	var expiration time.Duration
	if r.ttl > 0 {
		expiration = r.ttl
	}

	if err := r.client.Set(ctx, GetKey(input.Scope), jsonData, expiration).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog for scope %s", input.Scope)
	}

	return &PutOutput{
		Scope:     input.Scope,
		FetchedAt: now,
		ExpiresAt: expiresAt(now, r.ttl),
	}, nil
}

func (r *redisRepository) Invalidate(ctx context.Context, input InvalidateInput) (*InvalidateOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	removed, err := r.client.Del(ctx, GetKey(input.Scope)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to invalidate catalog for scope %s", input.Scope)
	}

	return &InvalidateOutput{Existed: removed > 0}, nil
}

// GetKey returns the Redis key for a scope's catalog
// Exposed for testing purposes
func GetKey(scope string) string {
	return fmt.Sprintf("%s%s", catalogKeyPrefix, scope)
}
