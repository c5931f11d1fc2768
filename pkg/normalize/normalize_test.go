package normalize_test

import (
	"testing"

	"github.com/kriptogan/dexnorm/pkg/creature"
	"github.com/kriptogan/dexnorm/pkg/normalize"
	"github.com/kriptogan/dexnorm/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lvl(i int) *int { return &i }

func ref(name string) creature.Ref {
	return creature.Ref{Name: name, URL: "https://api/" + name}
}

func detail(level *int, method, group string) creature.VersionDetail {
	return creature.VersionDetail{
		LevelLearnedAt:  level,
		MoveLearnMethod: ref(method),
		VersionGroup:    ref(group),
	}
}

func rawPikachu() creature.Raw {
	return creature.Raw{
		ID:             25,
		Name:           "Pikachu",
		Height:         lvl(4),
		Weight:         lvl(60),
		BaseExperience: nil,
		Types:          []creature.RawType{{Slot: 1, Type: ref("electric")}},
		Stats: []creature.RawStat{
			{BaseStat: lvl(35), Effort: lvl(0), Stat: ref("hp")},
			{BaseStat: lvl(90), Effort: lvl(2), Stat: ref("speed")},
		},
		Abilities: []creature.RawAbility{
			{Ability: ref("static"), Slot: 1},
			{Ability: ref("lightning-rod"), IsHidden: true, Slot: 3},
		},
		Moves: []creature.RawMove{
			{
				Move: ref("thunder-shock"),
				VersionGroupDetails: []creature.VersionDetail{
					detail(lvl(1), "level-up", "sword-shield"),
					detail(lvl(1), "level-up", "scarlet-violet"),
				},
			},
			{
				Move: ref("thunderbolt"),
				VersionGroupDetails: []creature.VersionDetail{
					detail(lvl(0), "machine", "scarlet-violet"),
				},
			},
			{
				Move: ref("quick-attack"),
				VersionGroupDetails: []creature.VersionDetail{
					detail(lvl(6), "level-up", "legends-arceus"),
				},
			},
		},
	}
}

// TestRecord verifies references are reduced to names and moves are
// resolved.
func TestRecord(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c, stats := normalize.Record(release.Default(), rawPikachu())
	assert.Equal(25, c.ID)
	assert.Equal("Pikachu", c.Name)
	assert.Equal(4, *c.Height)
	assert.Equal(60, *c.Weight)
	assert.Nil(c.BaseExperience)
	assert.Equal("pikachu.png", c.SpritePath)

	assert.Equal([]creature.TypeSlot{
		{Slot: 1, Type: creature.Name{Name: "electric"}},
	}, c.Types)
	require.Len(c.Stats, 2)
	assert.Equal("speed", c.Stats[1].Stat.Name)
	assert.Equal(90, *c.Stats[1].BaseStat)
	require.Len(c.Abilities, 2)
	assert.Equal("lightning-rod", c.Abilities[1].Ability.Name)
	assert.True(c.Abilities[1].IsHidden)

	assert.Equal([]creature.LevelUpMove{
		{Name: "thunder-shock", LevelLearnedAt: lvl(1), VersionGroup: "scarlet-violet"},
		{Name: "quick-attack", LevelLearnedAt: lvl(6), VersionGroup: "legends-arceus"},
	}, c.LevelUpMoves)
	assert.Equal(2, stats.Resolved)
	assert.Equal(1, stats.Empty)
}

// TestRecordEmpty verifies a record without lists yields empty, not
// nil, slices.
func TestRecordEmpty(t *testing.T) {
	c, _ := normalize.Record(release.Default(), creature.Raw{ID: 1, Name: "x"})
	assert.NotNil(t, c.Types)
	assert.NotNil(t, c.Stats)
	assert.NotNil(t, c.Abilities)
	assert.NotNil(t, c.LevelUpMoves)
	assert.Empty(t, c.LevelUpMoves)
}

// TestRecordNoAliasing verifies changes to the raw record do not reach
// the normalized one.
func TestRecordNoAliasing(t *testing.T) {
	raw := rawPikachu()
	c, _ := normalize.Record(release.Default(), raw)
	*raw.Height = 100
	*raw.Stats[0].BaseStat = 1
	raw.Types[0].Type.Name = "water"
	assert.Equal(t, 4, *c.Height)
	assert.Equal(t, 35, *c.Stats[0].BaseStat)
	assert.Equal(t, "electric", c.Types[0].Type.Name)
}

// TestSpritePath verifies lower-casing without sanitizing.
func TestSpritePath(t *testing.T) {
	tests := []struct {
		name, input, res string
	}{
		{"plain", "bulbasaur", "bulbasaur.png"},
		{"upper", "Pikachu", "pikachu.png"},
		{"punctuation", "Mr. Mime", "mr. mime.png"},
		{"empty", "", ".png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.res, normalize.SpritePath(tt.input))
		})
	}
}

// TestSortMoves verifies stable ascending order with null as 0.
func TestSortMoves(t *testing.T) {
	tests := []struct {
		name  string
		moves []creature.LevelUpMove
		res   []string
	}{
		{
			name: "stable",
			moves: []creature.LevelUpMove{
				{Name: "a", LevelLearnedAt: lvl(10)},
				{Name: "b", LevelLearnedAt: lvl(5)},
				{Name: "c", LevelLearnedAt: lvl(5)},
			},
			res: []string{"b", "c", "a"},
		},
		{
			name: "null first",
			moves: []creature.LevelUpMove{
				{Name: "a", LevelLearnedAt: lvl(1)},
				{Name: "b"},
				{Name: "c", LevelLearnedAt: lvl(0)},
			},
			res: []string{"b", "c", "a"},
		},
		{
			name:  "empty",
			moves: []creature.LevelUpMove{},
			res:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalize.SortMoves(tt.moves)
			var names []string
			for _, m := range tt.moves {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.res, names)
		})
	}
}
