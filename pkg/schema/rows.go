package schema

import (
	"github.com/gnames/gnuuid"
	"github.com/kriptogan/dexnorm/pkg/creature"
)

// Table holds rows of one model ready for insertion.
type Table struct {
	// Model is a zero value of the table model.
	Model DDLGenerator

	// Rows are column values in the order of Columns(Model).
	Rows [][]any
}

// EntityID returns the deterministic key of an entity name.
func EntityID(name string) string {
	return gnuuid.New(name).String()
}

// Build converts the normalized collection, entity tables and info
// pairs into rows of all models, in the order of AllModels.
func Build(
	creatures []creature.Creature,
	tbl creature.Tables,
	info []BundleInfo,
) []Table {
	var (
		cs  []Creature
		cts []CreatureType
		css []CreatureStat
		cas []CreatureAbility
		lms []LevelUpMove
	)
	for _, c := range creatures {
		cs = append(cs, Creature{
			ID:             c.ID,
			Name:           c.Name,
			Height:         c.Height,
			Weight:         c.Weight,
			BaseExperience: c.BaseExperience,
			SpritePath:     c.SpritePath,
		})
		for i, v := range c.Types {
			cts = append(cts, CreatureType{
				CreatureID: c.ID,
				Position:   i,
				Slot:       v.Slot,
				TypeID:     EntityID(v.Type.Name),
				TypeName:   v.Type.Name,
			})
		}
		for i, v := range c.Stats {
			css = append(css, CreatureStat{
				CreatureID: c.ID,
				Position:   i,
				StatID:     EntityID(v.Stat.Name),
				StatName:   v.Stat.Name,
				BaseStat:   v.BaseStat,
				Effort:     v.Effort,
			})
		}
		for i, v := range c.Abilities {
			cas = append(cas, CreatureAbility{
				CreatureID:  c.ID,
				Position:    i,
				AbilityID:   EntityID(v.Ability.Name),
				AbilityName: v.Ability.Name,
				IsHidden:    v.IsHidden,
				Slot:        v.Slot,
			})
		}
		for i, v := range c.LevelUpMoves {
			lms = append(lms, LevelUpMove{
				CreatureID:     c.ID,
				Position:       i,
				MoveID:         EntityID(v.Name),
				MoveName:       v.Name,
				LevelLearnedAt: v.LevelLearnedAt,
				VersionGroup:   v.VersionGroup,
			})
		}
	}

	var (
		ms  []Move
		mds []MoveDetail
		as  []Ability
		ts  []Type
		ss  []Stat
	)
	for i, v := range tbl.Moves {
		id := EntityID(v.Name)
		ms = append(ms, Move{ID: id, Name: v.Name, Position: i})
		for j, d := range v.VersionGroupDetails {
			mds = append(mds, MoveDetail{
				MoveID:          id,
				Position:        j,
				LevelLearnedAt:  d.LevelLearnedAt,
				MoveLearnMethod: d.MoveLearnMethod,
				VersionGroup:    d.VersionGroup,
			})
		}
	}
	for i, v := range tbl.Abilities {
		as = append(as, Ability{
			ID:       EntityID(v.Name),
			Name:     v.Name,
			Position: i,
			IsHidden: v.IsHidden,
			Slot:     v.Slot,
		})
	}
	for i, v := range tbl.Types {
		ts = append(ts, Type{
			ID:       EntityID(v.Name),
			Name:     v.Name,
			Position: i,
			Slot:     v.Slot,
		})
	}
	for i, v := range tbl.Stats {
		ss = append(ss, Stat{
			ID:       EntityID(v.Name),
			Name:     v.Name,
			Position: i,
			BaseStat: v.BaseStat,
			Effort:   v.Effort,
		})
	}

	return []Table{
		newTable(cs),
		newTable(cts),
		newTable(css),
		newTable(cas),
		newTable(lms),
		newTable(ms),
		newTable(mds),
		newTable(as),
		newTable(ts),
		newTable(ss),
		newTable(info),
	}
}

func newTable[T DDLGenerator](items []T) Table {
	var zero T
	res := Table{Model: zero, Rows: make([][]any, len(items))}
	for i, v := range items {
		res.Rows[i] = Values(v)
	}
	return res
}
