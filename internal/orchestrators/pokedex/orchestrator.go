// Package pokedex implements the orchestrator a presentation layer talks to:
// the selectable name list, loading one pokemon, and its derived views
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex Service

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex/internal/repositories/catalog"
)

// Service defines the operations exposed to a presentation layer
type Service interface {
	// ListNames returns the name catalog, from cache when possible
	ListNames(ctx context.Context, input *ListNamesInput) (*ListNamesOutput, error)
	// InvalidateNames drops the cached catalog so the next ListNames refetches
	InvalidateNames(ctx context.Context, input *InvalidateNamesInput) (*InvalidateNamesOutput, error)

	// LoadPokemon fetches one record and builds its view-model
	LoadPokemon(ctx context.Context, input *LoadPokemonInput) (*LoadPokemonOutput, error)
	// FetchSprite downloads the front or back sprite; never cached
	FetchSprite(ctx context.Context, input *FetchSpriteInput) (*FetchSpriteOutput, error)
	// GetStats flattens the pokemon's stats into an ordered view
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}

// Config holds the dependencies for the pokedex orchestrator
type Config struct {
	Client      pokeapi.Client
	CatalogRepo catalog.Repository
	IDGenerator idgen.Generator
	// CatalogScope keys the cached catalog (optional, defaults to catalog.DefaultScope)
	CatalogScope string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	client       pokeapi.Client
	catalogRepo  catalog.Repository
	idGen        idgen.Generator
	catalogScope string
}

// NewOrchestrator creates a new pokedex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	scope := cfg.CatalogScope
	if scope == "" {
		scope = catalog.DefaultScope
	}

	return &orchestrator{
		client:       cfg.Client,
		catalogRepo:  cfg.CatalogRepo,
		idGen:        cfg.IDGenerator,
		catalogScope: scope,
	}, nil
}

func (o *orchestrator) ListNames(ctx context.Context, input *ListNamesInput) (*ListNamesOutput, error) {
	if input == nil {
		input = &ListNamesInput{}
	}
	log := slog.With("request_id", o.idGen.Generate(), "scope", o.catalogScope)

	if !input.Refresh {
		cached, err := o.catalogRepo.Get(ctx, catalog.GetInput{Scope: o.catalogScope})
		switch {
		case err == nil:
			log.Debug("Serving name catalog from cache", "count", len(cached.Names))
			return &ListNamesOutput{
				Names:     cached.Names,
				FromCache: true,
				FetchedAt: cached.FetchedAt,
			}, nil
		case errors.IsNotFound(err):
			log.Debug("Name catalog not cached")
		default:
			// the cache is an optimization; fall through to the API
			log.Warn("Failed to read cached name catalog", "error", err)
		}
	}

	names, err := o.client.ListPokemonNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon names")
	}

	output := &ListNamesOutput{Names: names}

	stored, err := o.catalogRepo.Put(ctx, catalog.PutInput{Scope: o.catalogScope, Names: names})
	if err != nil {
		log.Warn("Failed to cache name catalog", "error", err)
	} else {
		output.FetchedAt = stored.FetchedAt
	}

	log.Info("Fetched name catalog", "count", len(names))
	return output, nil
}

func (o *orchestrator) InvalidateNames(ctx context.Context, _ *InvalidateNamesInput) (*InvalidateNamesOutput, error) {
	out, err := o.catalogRepo.Invalidate(ctx, catalog.InvalidateInput{Scope: o.catalogScope})
	if err != nil {
		return nil, errors.Wrap(err, "failed to invalidate name catalog")
	}

	slog.Info("Invalidated name catalog", "scope", o.catalogScope, "existed", out.Existed)
	return &InvalidateNamesOutput{Existed: out.Existed}, nil
}

func (o *orchestrator) LoadPokemon(ctx context.Context, input *LoadPokemonInput) (*LoadPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := strings.ToLower(strings.TrimSpace(input.Name))
	if name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	log := slog.With("request_id", o.idGen.Generate(), "pokemon", name)

	record, err := o.client.GetPokemon(ctx, name)
	if err != nil {
		log.Error("Failed to fetch pokemon", "error", err)
		return nil, errors.Wrapf(err, "failed to load pokemon %s", name)
	}

	pokemon, err := entities.FromRecord(record)
	if err != nil {
		log.Error("Malformed pokemon record", "error", err)
		return nil, errors.Wrapf(err, "failed to read pokemon %s", name)
	}

	log.Debug("Loaded pokemon", "stats", pokemon.StatCount())
	return &LoadPokemonOutput{Pokemon: pokemon}, nil
}

func (o *orchestrator) FetchSprite(ctx context.Context, input *FetchSpriteInput) (*FetchSpriteOutput, error) {
	if input == nil || input.Pokemon == nil {
		return nil, errors.InvalidArgument("pokemon is required")
	}
	if !input.Side.Valid() {
		return nil, errors.InvalidArgumentf("unknown sprite side %q", input.Side)
	}

	url := input.Pokemon.Sprite(input.Side)
	if url == nil {
		slog.Debug("No sprite published", "pokemon", input.Pokemon.Name(), "side", input.Side)
		return &FetchSpriteOutput{Available: false}, nil
	}

	body, err := o.client.FetchImage(ctx, *url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s sprite for %s", input.Side, input.Pokemon.Name())
	}

	return &FetchSpriteOutput{
		Available:   true,
		URL:         *url,
		Image:       bytes.NewReader(body),
		ContentType: http.DetectContentType(body),
		Size:        len(body),
	}, nil
}

func (o *orchestrator) GetStats(_ context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil || input.Pokemon == nil {
		return nil, errors.InvalidArgument("pokemon is required")
	}

	stats, err := input.Pokemon.StatsView()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read stats for %s", input.Pokemon.Name())
	}

	return &GetStatsOutput{Stats: stats}, nil
}
