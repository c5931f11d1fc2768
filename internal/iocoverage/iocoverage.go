// Package iocoverage reports how well the top priority release covers
// level-up moves of the raw collection.
package iocoverage

import (
	"math"
	"slices"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/kriptogan/dexnorm/pkg/creature"
	"github.com/kriptogan/dexnorm/pkg/release"
	"gopkg.in/yaml.v3"
)

// Report summarizes release coverage of level-up moves.
type Report struct {
	// Creatures is the number of analyzed records.
	Creatures int `yaml:"creatures" json:"creatures"`

	// LevelUpMoves counts moves with at least one allowed level-up
	// detail.
	LevelUpMoves int `yaml:"level_up_moves" json:"levelUpMoves"`

	// Entries counts allowed level-up details.
	Entries int `yaml:"entries" json:"entries"`

	// Releases are entry counts per release, sorted by release name.
	Releases []ReleaseCount `yaml:"releases" json:"releases"`

	// TopRelease is the highest priority release.
	TopRelease string `yaml:"top_release" json:"topRelease"`

	// TopCovered counts moves with a TopRelease detail.
	TopCovered int `yaml:"top_covered" json:"topCovered"`

	// Coverage is TopCovered as a percentage of LevelUpMoves.
	Coverage float64 `yaml:"coverage_percent" json:"coveragePercent"`

	// Missing counts moves without a TopRelease detail.
	Missing int `yaml:"missing" json:"missing"`

	// Examples are the first moves without a TopRelease detail.
	Examples []Example `yaml:"examples" json:"examples"`
}

// ReleaseCount is the number of level-up details of one release.
type ReleaseCount struct {
	Release string `yaml:"release" json:"release"`
	Entries int    `yaml:"entries" json:"entries"`
}

// Example is a move lacking the top release.
type Example struct {
	Creature string   `yaml:"creature" json:"creature"`
	Move     string   `yaml:"move" json:"move"`
	Releases []string `yaml:"releases" json:"releases"`
}

// Analyze counts allowed level-up details per release and finds moves
// without the top priority release. At most examples moves are listed.
func Analyze(p release.Policy, raws []creature.Raw, examples int) Report {
	res := Report{
		Creatures:  len(raws),
		TopRelease: p.Top(),
		Releases:   []ReleaseCount{},
		Examples:   []Example{},
	}
	counts := make(map[string]int)

	for _, r := range raws {
		for _, m := range r.Moves {
			var groups []string
			var hasTop bool
			for _, d := range m.VersionGroupDetails {
				g := d.VersionGroup.Name
				if d.MoveLearnMethod.Name != release.LevelUp || !p.Allowed(g) {
					continue
				}
				groups = append(groups, g)
				counts[g]++
				if g == res.TopRelease {
					hasTop = true
				}
			}
			if len(groups) == 0 {
				continue
			}

			res.LevelUpMoves++
			res.Entries += len(groups)
			if hasTop {
				res.TopCovered++
				continue
			}
			res.Missing++
			if len(res.Examples) < examples {
				res.Examples = append(res.Examples, Example{
					Creature: r.Name,
					Move:     m.Move.Name,
					Releases: groups,
				})
			}
		}
	}

	for k, v := range counts {
		res.Releases = append(res.Releases, ReleaseCount{Release: k, Entries: v})
	}
	slices.SortFunc(res.Releases, func(a, b ReleaseCount) int {
		return strings.Compare(a.Release, b.Release)
	})

	if res.LevelUpMoves > 0 {
		pct := float64(res.TopCovered) / float64(res.LevelUpMoves) * 100
		res.Coverage = math.Round(pct*10) / 10
	}
	return res
}

// Render encodes the report as "yaml" or "json".
func Render(r Report, format string) ([]byte, error) {
	switch format {
	case "yaml":
		res, err := yaml.Marshal(r)
		if err != nil {
			return nil, CoverageRenderError(format, err)
		}
		return res, nil
	case "json":
		enc := gnfmt.GNjson{Pretty: true}
		res, err := enc.Encode(r)
		if err != nil {
			return nil, CoverageRenderError(format, err)
		}
		return append(res, '\n'), nil
	default:
		return nil, CoverageFormatError(format)
	}
}
