package testutils

import (
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/testutils/builders"
)

const (
	// TestPokemonName is the default pokemon name for test fixtures
	TestPokemonName = "bulbasaur"

	// TestFrontSpriteURL and TestBackSpriteURL are the fixture sprite URLs
	TestFrontSpriteURL = "url-f"
	TestBackSpriteURL  = "url-b"
)

// CreateTestRecord returns the two-stat bulbasaur record used across tests
func CreateTestRecord() entities.Record {
	return builders.NewRecordBuilder().
		WithName(TestPokemonName).
		WithBaseExperience(64).
		WithFrontSprite(TestFrontSpriteURL).
		WithBackSprite(TestBackSpriteURL).
		WithStat("hp", 45).
		WithStat("attack", 49).
		Build()
}

// CreateFullTestRecord returns bulbasaur with all six base stats
func CreateFullTestRecord() entities.Record {
	return builders.NewRecordBuilder().
		WithName(TestPokemonName).
		WithStat("hp", 45).
		WithStat("attack", 49).
		WithStat("defense", 49).
		WithStat("special-attack", 65).
		WithStat("special-defense", 65).
		WithStat("speed", 45).
		Build()
}

// TestPokemonNames is a short catalog in upstream order
var TestPokemonNames = []string{"bulbasaur", "ivysaur", "venusaur"}
