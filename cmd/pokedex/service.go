package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/config"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex/internal/redis"
	"github.com/KirkDiggler/pokedex/internal/repositories/catalog"
)

const redisPingTimeout = 2 * time.Second

// buildService wires the PokéAPI client, the catalog cache and the orchestrator
func buildService(cfg *config.Config) (pokedex.Service, func(), error) {
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.API.BaseURL,
		HTTPTimeout: cfg.API.Timeout,
		ListLimit:   cfg.API.ListLimit,
		UserAgent:   cfg.API.UserAgent,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	catalogRepo, closeFn, err := buildCatalogRepo(cfg)
	if err != nil {
		return nil, nil, err
	}

	service, err := pokedex.NewOrchestrator(&pokedex.Config{
		Client:       client,
		CatalogRepo:  catalogRepo,
		IDGenerator:  idgen.NewUUID("req"),
		CatalogScope: cfg.Catalog.Scope,
	})
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to create pokedex orchestrator: %w", err)
	}

	return service, closeFn, nil
}

func buildCatalogRepo(cfg *config.Config) (catalog.Repository, func(), error) {
	if cfg.Catalog.Backend != config.BackendRedis {
		return catalog.NewInMemory(&catalog.InMemoryConfig{TTL: cfg.Catalog.TTL}), func() {}, nil
	}

	client, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	if err := redis.Ping(context.Background(), client, redisPingTimeout); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Endpoint, err)
	}

	repo, err := catalog.NewRedis(&catalog.RedisConfig{
		Client: client,
		TTL:    cfg.Catalog.TTL,
	})
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}

	slog.Debug("Using redis name catalog", "endpoint", cfg.Redis.Endpoint)
	return repo, closeFn, nil
}
