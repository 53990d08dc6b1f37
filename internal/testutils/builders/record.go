// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/pokedex/internal/entities"
)

// RecordBuilder provides a fluent interface for building test pokemon records
// shaped like the upstream /pokemon/{name}/ payload
type RecordBuilder struct {
	record entities.Record
}

// NewRecordBuilder creates a builder for a minimal, well-formed record
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		record: entities.Record{
			"id":              float64(1),
			"name":            "bulbasaur",
			"base_experience": float64(64),
			"sprites": map[string]any{
				"front_default": "https://sprites.test/pokemon/1.png",
				"back_default":  "https://sprites.test/pokemon/back/1.png",
			},
			"stats": []any{},
		},
	}
}

// WithName sets the name
func (b *RecordBuilder) WithName(name string) *RecordBuilder {
	b.record["name"] = name
	return b
}

// WithBaseExperience sets base_experience
func (b *RecordBuilder) WithBaseExperience(exp int) *RecordBuilder {
	b.record["base_experience"] = float64(exp)
	return b
}

// WithNullBaseExperience sets base_experience to JSON null
func (b *RecordBuilder) WithNullBaseExperience() *RecordBuilder {
	b.record["base_experience"] = nil
	return b
}

// WithFrontSprite sets sprites.front_default; an empty url stores JSON null
func (b *RecordBuilder) WithFrontSprite(url string) *RecordBuilder {
	b.sprites()["front_default"] = nullable(url)
	return b
}

// WithBackSprite sets sprites.back_default; an empty url stores JSON null
func (b *RecordBuilder) WithBackSprite(url string) *RecordBuilder {
	b.sprites()["back_default"] = nullable(url)
	return b
}

// WithStat appends a stats entry
func (b *RecordBuilder) WithStat(name string, baseStat int) *RecordBuilder {
	stats, _ := b.record["stats"].([]any)
	b.record["stats"] = append(stats, map[string]any{
		"base_stat": float64(baseStat),
		"effort":    float64(0),
		"stat": map[string]any{
			"name": name,
			"url":  "https://pokeapi.test/api/v2/stat/" + name + "/",
		},
	})
	return b
}

// WithRawStats replaces the stats sequence verbatim
func (b *RecordBuilder) WithRawStats(stats []any) *RecordBuilder {
	b.record["stats"] = stats
	return b
}

// Without removes a top-level key
func (b *RecordBuilder) Without(key string) *RecordBuilder {
	delete(b.record, key)
	return b
}

// WithoutSprite removes a key from the sprites object
func (b *RecordBuilder) WithoutSprite(key string) *RecordBuilder {
	delete(b.sprites(), key)
	return b
}

// Build returns the record
func (b *RecordBuilder) Build() entities.Record {
	return b.record
}

func (b *RecordBuilder) sprites() map[string]any {
	sprites, ok := b.record["sprites"].(map[string]any)
	if !ok {
		sprites = map[string]any{}
		b.record["sprites"] = sprites
	}
	return sprites
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
