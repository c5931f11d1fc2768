// Package resolve reduces a move learn annotation to the single
// level-up fact that comes from the most authoritative release.
package resolve

import (
	"github.com/kriptogan/dexnorm/pkg/creature"
	"github.com/kriptogan/dexnorm/pkg/release"
)

// Outcome tells what happened to a move annotation.
type Outcome int

const (
	// OutcomeResolved means the move produced a LevelUpMove.
	OutcomeResolved Outcome = iota
	// OutcomeEmpty means no level-up detail survived filtering.
	OutcomeEmpty
	// OutcomeMissingName means the annotation had no move name.
	OutcomeMissingName
)

var outcomeNames = []string{"resolved", "empty", "missing-name"}

func (o Outcome) String() string {
	if int(o) < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Stats counts outcomes of resolving many annotations.
type Stats struct {
	// Resolved is the number of moves kept.
	Resolved int `json:"resolved"`
	// Empty is the number of moves without allowed level-up details.
	Empty int `json:"empty"`
	// MissingName is the number of annotations without a move name.
	MissingName int `json:"missingName"`
	// BadDetails is the number of details without a release or learn
	// method.
	BadDetails int `json:"badDetails"`
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Resolved += other.Resolved
	s.Empty += other.Empty
	s.MissingName += other.MissingName
	s.BadDetails += other.BadDetails
}

// Resolve picks the level-up detail of the highest priority allowed
// release. Ties keep the earliest detail. When none of the remaining
// details is ranked, the first remaining detail is used.
func Resolve(
	p release.Policy,
	move creature.RawMove,
) (creature.LevelUpMove, Outcome) {
	m, o, _ := resolve(p, move)
	return m, o
}

// ResolveAll resolves moves in annotation order, skipping those that do
// not produce a LevelUpMove.
func ResolveAll(
	p release.Policy,
	moves []creature.RawMove,
) ([]creature.LevelUpMove, Stats) {
	var stats Stats
	res := make([]creature.LevelUpMove, 0, len(moves))
	for i := range moves {
		m, o, bad := resolve(p, moves[i])
		stats.BadDetails += bad
		switch o {
		case OutcomeResolved:
			stats.Resolved++
			res = append(res, m)
		case OutcomeEmpty:
			stats.Empty++
		case OutcomeMissingName:
			stats.MissingName++
		}
	}
	return res, stats
}

func resolve(
	p release.Policy,
	move creature.RawMove,
) (creature.LevelUpMove, Outcome, int) {
	var res creature.LevelUpMove
	if move.Move.Name == "" {
		return res, OutcomeMissingName, 0
	}

	var bad int
	best := -1
	bestRank := release.Unranked
	for i := range move.VersionGroupDetails {
		d := &move.VersionGroupDetails[i]
		if d.VersionGroup.Name == "" || d.MoveLearnMethod.Name == "" {
			bad++
			continue
		}
		if d.MoveLearnMethod.Name != release.LevelUp ||
			!p.Allowed(d.VersionGroup.Name) {
			continue
		}
		if best == -1 {
			best = i
			bestRank = p.Rank(d.VersionGroup.Name)
			continue
		}
		if r := p.Rank(d.VersionGroup.Name); r < bestRank {
			best, bestRank = i, r
		}
	}

	if best == -1 {
		return res, OutcomeEmpty, bad
	}

	d := move.VersionGroupDetails[best]
	res = creature.LevelUpMove{
		Name:           move.Move.Name,
		LevelLearnedAt: creature.CopyInt(d.LevelLearnedAt),
		VersionGroup:   d.VersionGroup.Name,
	}
	return res, OutcomeResolved, bad
}
