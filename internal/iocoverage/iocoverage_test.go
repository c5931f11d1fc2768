package iocoverage_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iocoverage"
	"github.com/kriptogan/dexnorm/pkg/creature"
	"github.com/kriptogan/dexnorm/pkg/errcode"
	"github.com/kriptogan/dexnorm/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func detail(method, group string) creature.VersionDetail {
	lvl := 1
	return creature.VersionDetail{
		LevelLearnedAt:  &lvl,
		MoveLearnMethod: creature.Ref{Name: method},
		VersionGroup:    creature.Ref{Name: group},
	}
}

func move(name string, ds ...creature.VersionDetail) creature.RawMove {
	return creature.RawMove{
		Move:                creature.Ref{Name: name},
		VersionGroupDetails: ds,
	}
}

func sample() []creature.Raw {
	return []creature.Raw{
		{
			Name: "eevee",
			Moves: []creature.RawMove{
				move("tackle",
					detail("level-up", "scarlet-violet"),
					detail("level-up", "sword-shield"),
				),
				move("growl",
					detail("level-up", "sword-shield"),
					detail("level-up", "red-blue"),
				),
				move("dig", detail("machine", "sword-shield")),
			},
		},
		{
			Name: "vaporeon",
			Moves: []creature.RawMove{
				move("water-gun",
					detail("level-up", "legends-arceus"),
					detail("level-up", "sword-shield"),
				),
			},
		},
	}
}

// TestAnalyze verifies counts, coverage and examples.
func TestAnalyze(t *testing.T) {
	assert := assert.New(t)

	r := iocoverage.Analyze(release.Default(), sample(), 10)
	assert.Equal(2, r.Creatures)
	assert.Equal(3, r.LevelUpMoves)
	assert.Equal(5, r.Entries)
	assert.Equal("scarlet-violet", r.TopRelease)
	assert.Equal(1, r.TopCovered)
	assert.Equal(2, r.Missing)
	assert.Equal(33.3, r.Coverage)
	assert.Equal([]iocoverage.ReleaseCount{
		{Release: "legends-arceus", Entries: 1},
		{Release: "scarlet-violet", Entries: 1},
		{Release: "sword-shield", Entries: 3},
	}, r.Releases)
	assert.Equal([]iocoverage.Example{
		{Creature: "eevee", Move: "growl", Releases: []string{"sword-shield"}},
		{
			Creature: "vaporeon",
			Move:     "water-gun",
			Releases: []string{"legends-arceus", "sword-shield"},
		},
	}, r.Examples)
}

// TestAnalyze_ExampleLimit verifies examples are capped while the
// missing count is not.
func TestAnalyze_ExampleLimit(t *testing.T) {
	r := iocoverage.Analyze(release.Default(), sample(), 1)
	assert.Equal(t, 2, r.Missing)
	assert.Len(t, r.Examples, 1)

	r = iocoverage.Analyze(release.Default(), nil, 1)
	assert.Equal(t, 0.0, r.Coverage)
	assert.NotNil(t, r.Examples)
}

// TestRender verifies both formats and the format error.
func TestRender(t *testing.T) {
	r := iocoverage.Analyze(release.Default(), sample(), 10)

	data, err := iocoverage.Render(r, "yaml")
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, "scarlet-violet", fromYAML["top_release"])
	assert.Equal(t, 2, fromYAML["missing"])

	data, err = iocoverage.Render(r, "json")
	require.NoError(t, err)
	var fromJSON iocoverage.Report
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, r, fromJSON)

	_, err = iocoverage.Render(r, "csv")
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CoverageFormatError, gnErr.Code)
}
