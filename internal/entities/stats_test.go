package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/testutils/builders"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestStatsView_DuplicateNameKeepsFirstPositionLastValue(t *testing.T) {
	record := builders.NewRecordBuilder().
		WithStat("hp", 45).
		WithStat("attack", 49).
		WithStat("hp", 50).
		Build()

	p, err := entities.FromRecord(record)
	require.NoError(t, err)

	view, err := p.StatsView()
	require.NoError(t, err)

	assert.Equal(t, 2, view.Len())
	assert.Equal(t, []string{"hp", "attack"}, view.Names())
	hp, ok := view.Get("hp")
	assert.True(t, ok)
	assert.Equal(t, 50, hp)
}

func TestStatsView_Aggregates(t *testing.T) {
	record := builders.NewRecordBuilder().
		WithStat("hp", 45).
		WithStat("attack", 49).
		WithStat("special-attack", 65).
		Build()

	p, err := entities.FromRecord(record)
	require.NoError(t, err)

	view, err := p.StatsView()
	require.NoError(t, err)

	assert.Equal(t, 159, view.Total())
	assert.Equal(t, 65, view.Max())

	_, ok := view.Get("speed")
	assert.False(t, ok)
}

func TestStatsView_EmptyStats(t *testing.T) {
	p, err := entities.FromRecord(builders.NewRecordBuilder().Build())
	require.NoError(t, err)

	view, err := p.StatsView()
	require.NoError(t, err)
	assert.Equal(t, 0, view.Len())
	assert.Equal(t, 0, view.Max())
	assert.Empty(t, view.Names())
}

func TestStatsView_EntriesIsACopy(t *testing.T) {
	p, err := entities.FromRecord(builders.NewRecordBuilder().WithStat("hp", 45).Build())
	require.NoError(t, err)

	view, err := p.StatsView()
	require.NoError(t, err)

	entries := view.Entries()
	entries[0].Value = 999

	hp, _ := view.Get("hp")
	assert.Equal(t, 45, hp)
}
