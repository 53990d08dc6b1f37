package entities

import (
	"strings"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// Record keys read by FromRecord
const (
	FieldName           = "name"
	FieldBaseExperience = "base_experience"
	FieldSprites        = "sprites"
	FieldFrontDefault   = "front_default"
	FieldBackDefault    = "back_default"
	FieldStats          = "stats"
	FieldStat           = "stat"
	FieldBaseStat       = "base_stat"
)

// SpriteSide selects one of the two default sprites
type SpriteSide string

// Sprite sides
const (
	SpriteFront SpriteSide = "front"
	SpriteBack  SpriteSide = "back"
)

// Valid reports whether s names a known sprite side
func (s SpriteSide) Valid() bool {
	return s == SpriteFront || s == SpriteBack
}

// Pokemon is the display-ready view of one Record. It is immutable once built:
// fields are copied out at construction and only exposed through accessors.
// Derived values (the stats view, sprite images) are computed on request and
// never stored.
type Pokemon struct {
	name               string
	baseExperience     int
	hasBaseExperience  bool
	spriteFrontDefault *string
	spriteBackDefault  *string
	stats              []any
}

// FromRecord builds a Pokemon from a raw record.
// Returns errors.MissingField when name, base_experience, sprites or stats is
// absent. Sprite URLs may be absent or null; base_experience may be null.
func FromRecord(record Record) (*Pokemon, error) {
	if record == nil {
		return nil, errors.InvalidArgument("record is required")
	}

	p := &Pokemon{}

	name, err := requireField(record, FieldName)
	if err != nil {
		return nil, err
	}
	if p.name, err = toString(FieldName, name); err != nil {
		return nil, err
	}

	baseExp, err := requireField(record, FieldBaseExperience)
	if err != nil {
		return nil, err
	}
	if baseExp != nil {
		if p.baseExperience, err = toInt(FieldBaseExperience, baseExp); err != nil {
			return nil, err
		}
		p.hasBaseExperience = true
	}

	if p.spriteFrontDefault, err = spriteURL(record, FieldFrontDefault); err != nil {
		return nil, err
	}
	if p.spriteBackDefault, err = spriteURL(record, FieldBackDefault); err != nil {
		return nil, err
	}

	stats, err := requireField(record, FieldStats)
	if err != nil {
		return nil, err
	}
	seq, ok := stats.([]any)
	if !ok {
		return nil, errors.InvalidFieldf(FieldStats, "stats must be a list, got %T", stats)
	}
	p.stats = append([]any(nil), seq...)

	return p, nil
}

func requireField(record Record, keys ...string) (any, error) {
	v, found, err := record.lookup(keys...)
	if err != nil {
		return nil, err
	}
	if found < len(keys) {
		return nil, errors.MissingField(strings.Join(keys[:found+1], "."))
	}
	return v, nil
}

// spriteURL treats an absent, null or empty URL as "no sprite"; only the
// enclosing sprites object is required.
func spriteURL(record Record, key string) (*string, error) {
	if _, err := requireField(record, FieldSprites); err != nil {
		return nil, err
	}
	v, found, err := record.lookup(FieldSprites, key)
	if err != nil {
		return nil, err
	}
	if found < 2 || v == nil {
		return nil, nil
	}
	url, err := toString(FieldSprites+"."+key, v)
	if err != nil {
		return nil, err
	}
	if url == "" {
		return nil, nil
	}
	return &url, nil
}

// Name returns the pokemon's name
func (p *Pokemon) Name() string {
	return p.name
}

// BaseExperience returns the base experience, or 0 when the record had null
func (p *Pokemon) BaseExperience() int {
	return p.baseExperience
}

// HasBaseExperience is false when the record carried a null base_experience
func (p *Pokemon) HasBaseExperience() bool {
	return p.hasBaseExperience
}

// SpriteFrontDefault returns the front sprite URL, nil when none is published
func (p *Pokemon) SpriteFrontDefault() *string {
	return p.spriteFrontDefault
}

// SpriteBackDefault returns the back sprite URL, nil when none is published
func (p *Pokemon) SpriteBackDefault() *string {
	return p.spriteBackDefault
}

// Sprite returns the URL for the given side, nil when there is none
func (p *Pokemon) Sprite(side SpriteSide) *string {
	switch side {
	case SpriteFront:
		return p.spriteFrontDefault
	case SpriteBack:
		return p.spriteBackDefault
	default:
		return nil
	}
}

// StatCount returns the number of raw stat entries carried from the record
func (p *Pokemon) StatCount() int {
	return len(p.stats)
}

// StatsView flattens the raw stats into name -> base value, in record order.
// It is rebuilt on every call.
func (p *Pokemon) StatsView() (*StatsView, error) {
	view := newStatsView(len(p.stats))
	for i, raw := range p.stats {
		entry, ok := asObject(raw)
		if !ok {
			path := entryPath(FieldStats, i)
			return nil, errors.InvalidFieldf(path, "%s must be an object, got %T", path, raw)
		}
		entryRecord := Record(entry)

		name, err := requireField(entryRecord, FieldStat, FieldName)
		if err != nil {
			return nil, prefixFieldError(err, FieldStats, i)
		}
		statName, err := toString(indexPath(FieldStats, i, FieldStat+"."+FieldName), name)
		if err != nil {
			return nil, err
		}

		baseStat, err := requireField(entryRecord, FieldBaseStat)
		if err != nil {
			return nil, prefixFieldError(err, FieldStats, i)
		}
		value, err := toInt(indexPath(FieldStats, i, FieldBaseStat), baseStat)
		if err != nil {
			return nil, err
		}

		view.set(statName, value)
	}
	return view, nil
}

// prefixFieldError rewrites a field error raised against one stat entry so its
// path points into the full record.
func prefixFieldError(err error, base string, i int) error {
	var fieldErr *errors.Error
	if !errors.As(err, &fieldErr) {
		return err
	}
	inner := errors.FieldPath(err)
	path := indexPath(base, i, inner)
	if errors.IsMissingField(err) {
		return errors.MissingField(path)
	}
	return errors.InvalidFieldf(path, "%s", fieldErr.Message)
}
