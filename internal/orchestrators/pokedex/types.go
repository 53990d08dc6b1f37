package pokedex

import (
	"bytes"
	"time"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

// ListNamesInput defines the input for listing the name catalog
type ListNamesInput struct {
	// Refresh skips the cached catalog and refetches it
	Refresh bool
}

// ListNamesOutput defines the output for listing the name catalog
type ListNamesOutput struct {
	Names     []string
	FromCache bool
	FetchedAt time.Time
}

// InvalidateNamesInput defines the input for dropping the cached catalog
type InvalidateNamesInput struct{}

// InvalidateNamesOutput defines the output for dropping the cached catalog
type InvalidateNamesOutput struct {
	Existed bool
}

// LoadPokemonInput defines the input for loading one pokemon
type LoadPokemonInput struct {
	Name string
}

// LoadPokemonOutput defines the output for loading one pokemon
type LoadPokemonOutput struct {
	Pokemon *entities.Pokemon
}

// FetchSpriteInput defines the input for downloading one sprite
type FetchSpriteInput struct {
	Pokemon *entities.Pokemon
	Side    entities.SpriteSide
}

// FetchSpriteOutput defines the output for downloading one sprite.
// When the pokemon has no sprite for the side, Available is false and Image
// is nil.
type FetchSpriteOutput struct {
	Available   bool
	URL         string
	Image       *bytes.Reader
	ContentType string
	Size        int
}

// GetStatsInput defines the input for flattening a pokemon's stats
type GetStatsInput struct {
	Pokemon *entities.Pokemon
}

// GetStatsOutput defines the output for flattening a pokemon's stats
type GetStatsOutput struct {
	Stats *entities.StatsView
}
