// Package normalize turns one raw creature record into its normalized
// form.
package normalize

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kriptogan/dexnorm/pkg/creature"
	"github.com/kriptogan/dexnorm/pkg/release"
	"github.com/kriptogan/dexnorm/pkg/resolve"
)

// Record normalizes a raw creature. Level-up moves keep annotation
// order; use SortMoves to order them by level. The result shares no
// memory with raw.
func Record(
	p release.Policy,
	raw creature.Raw,
) (creature.Creature, resolve.Stats) {
	moves, stats := resolve.ResolveAll(p, raw.Moves)
	res := creature.Creature{
		ID:             raw.ID,
		Name:           raw.Name,
		Height:         creature.CopyInt(raw.Height),
		Weight:         creature.CopyInt(raw.Weight),
		BaseExperience: creature.CopyInt(raw.BaseExperience),
		Types:          types(raw.Types),
		Stats:          statValues(raw.Stats),
		Abilities:      abilities(raw.Abilities),
		LevelUpMoves:   moves,
		SpritePath:     SpritePath(raw.Name),
	}
	return res, stats
}

// SpritePath returns the local sprite file name for a creature name.
// The name is lower-cased and used as is.
func SpritePath(name string) string {
	return strings.ToLower(name) + ".png"
}

// SortMoves orders moves by level, keeping input order for equal levels.
// A missing level sorts as 0.
func SortMoves(moves []creature.LevelUpMove) {
	slices.SortStableFunc(moves, func(a, b creature.LevelUpMove) int {
		return cmp.Compare(a.Level(), b.Level())
	})
}

func types(ts []creature.RawType) []creature.TypeSlot {
	res := make([]creature.TypeSlot, len(ts))
	for i, v := range ts {
		res[i] = creature.TypeSlot{
			Slot: v.Slot,
			Type: creature.Name{Name: v.Type.Name},
		}
	}
	return res
}

func statValues(ss []creature.RawStat) []creature.StatValue {
	res := make([]creature.StatValue, len(ss))
	for i, v := range ss {
		res[i] = creature.StatValue{
			BaseStat: creature.CopyInt(v.BaseStat),
			Effort:   creature.CopyInt(v.Effort),
			Stat:     creature.Name{Name: v.Stat.Name},
		}
	}
	return res
}

func abilities(as []creature.RawAbility) []creature.AbilitySlot {
	res := make([]creature.AbilitySlot, len(as))
	for i, v := range as {
		res[i] = creature.AbilitySlot{
			Ability:  creature.Name{Name: v.Ability.Name},
			IsHidden: v.IsHidden,
			Slot:     v.Slot,
		}
	}
	return res
}
