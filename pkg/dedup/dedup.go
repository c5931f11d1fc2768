// Package dedup builds collection-wide entity tables out of the
// references scattered across raw creature records.
package dedup

import "github.com/kriptogan/dexnorm/pkg/creature"

// KindStats describes deduplication of one entity kind.
type KindStats struct {
	// Seen is the number of references visited.
	Seen int `json:"seen"`
	// Unique is the number of entities kept.
	Unique int `json:"unique"`
	// Skipped is the number of references without a name.
	Skipped int `json:"skipped"`
}

// Duplicates returns the number of references dropped because their
// entity was already known.
func (k KindStats) Duplicates() int {
	return k.Seen - k.Unique - k.Skipped
}

// Stats describes deduplication of all entity kinds.
type Stats struct {
	Moves     KindStats `json:"moves"`
	Abilities KindStats `json:"abilities"`
	Types     KindStats `json:"types"`
	Stats     KindStats `json:"stats"`
}

// Skipped returns the number of references without a name across all
// entity kinds.
func (s Stats) Skipped() int {
	return s.Moves.Skipped + s.Abilities.Skipped + s.Types.Skipped +
		s.Stats.Skipped
}

// orderedSet keeps entities in first-seen order, unique by name.
type orderedSet[T any] struct {
	index map[string]int
	items []T
	stats KindStats
}

func newOrderedSet[T any]() *orderedSet[T] {
	return &orderedSet[T]{index: make(map[string]int)}
}

// add stores the entity built by mk, unless the name is empty or
// already present. mk is only called for new names.
func (s *orderedSet[T]) add(name string, mk func() T) {
	s.stats.Seen++
	if name == "" {
		s.stats.Skipped++
		return
	}
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = len(s.items)
	s.items = append(s.items, mk())
	s.stats.Unique++
}

func (s *orderedSet[T]) result() []T {
	if s.items == nil {
		return make([]T, 0)
	}
	return s.items
}

// Tables folds the raw collection in input order into four entity
// tables. The first record that references a name defines the entity;
// later references are ignored, not merged. Input is not modified.
func Tables(raws []creature.Raw) (creature.Tables, Stats) {
	moves := newOrderedSet[creature.MoveEntity]()
	abilities := newOrderedSet[creature.AbilityEntity]()
	types := newOrderedSet[creature.TypeEntity]()
	stats := newOrderedSet[creature.StatEntity]()

	for i := range raws {
		r := &raws[i]
		for _, m := range r.Moves {
			moves.add(m.Move.Name, func() creature.MoveEntity {
				return moveEntity(m)
			})
		}
		for _, a := range r.Abilities {
			abilities.add(a.Ability.Name, func() creature.AbilityEntity {
				return creature.AbilityEntity{
					Name:     a.Ability.Name,
					IsHidden: a.IsHidden,
					Slot:     a.Slot,
				}
			})
		}
		for _, t := range r.Types {
			types.add(t.Type.Name, func() creature.TypeEntity {
				return creature.TypeEntity{Name: t.Type.Name, Slot: t.Slot}
			})
		}
		for _, s := range r.Stats {
			stats.add(s.Stat.Name, func() creature.StatEntity {
				return creature.StatEntity{
					Name:     s.Stat.Name,
					BaseStat: creature.CopyInt(s.BaseStat),
					Effort:   creature.CopyInt(s.Effort),
				}
			})
		}
	}

	res := creature.Tables{
		Moves:     moves.result(),
		Abilities: abilities.result(),
		Types:     types.result(),
		Stats:     stats.result(),
	}
	st := Stats{
		Moves:     moves.stats,
		Abilities: abilities.stats,
		Types:     types.stats,
		Stats:     stats.stats,
	}
	return res, st
}

func moveEntity(m creature.RawMove) creature.MoveEntity {
	details := make([]creature.MoveDetail, len(m.VersionGroupDetails))
	for i, d := range m.VersionGroupDetails {
		details[i] = creature.MoveDetail{
			LevelLearnedAt:  creature.CopyInt(d.LevelLearnedAt),
			MoveLearnMethod: d.MoveLearnMethod.Name,
			VersionGroup:    d.VersionGroup.Name,
		}
	}
	return creature.MoveEntity{
		Name:                m.Move.Name,
		VersionGroupDetails: details,
	}
}
