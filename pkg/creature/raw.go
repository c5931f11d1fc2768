// Package creature holds the creature models: raw records as served by
// the game-data API and their normalized, offline-ready form.
package creature

// Ref is a named remote reference as the API serves it.
type Ref struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Raw is one creature document from the API. Fields not listed here are
// ignored during decoding.
type Raw struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Height         *int         `json:"height"`
	Weight         *int         `json:"weight"`
	BaseExperience *int         `json:"base_experience"`
	Types          []RawType    `json:"types"`
	Stats          []RawStat    `json:"stats"`
	Abilities      []RawAbility `json:"abilities"`
	Moves          []RawMove    `json:"moves"`
}

// RawType assigns a type to a creature slot.
type RawType struct {
	Slot int `json:"slot"`
	Type Ref `json:"type"`
}

// RawStat is a creature's value for one stat.
type RawStat struct {
	BaseStat *int `json:"base_stat"`
	Effort   *int `json:"effort"`
	Stat     Ref  `json:"stat"`
}

// RawAbility assigns an ability to a creature slot.
type RawAbility struct {
	Ability  Ref  `json:"ability"`
	IsHidden bool `json:"is_hidden"`
	Slot     int  `json:"slot"`
}

// RawMove is a move learn annotation: the move and every release/method
// combination in which the creature can learn it.
type RawMove struct {
	Move                Ref             `json:"move"`
	VersionGroupDetails []VersionDetail `json:"version_group_details"`
}

// VersionDetail states how a move is learned in one release.
// LevelLearnedAt is only meaningful for the level-up method.
type VersionDetail struct {
	LevelLearnedAt  *int `json:"level_learned_at"`
	MoveLearnMethod Ref  `json:"move_learn_method"`
	VersionGroup    Ref  `json:"version_group"`
}

// CopyInt returns a new pointer holding the same value, or nil.
func CopyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
