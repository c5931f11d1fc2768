package creature

// Tables are the collection-wide entity tables. Every table holds each
// name exactly once, in first-seen order.
type Tables struct {
	Moves     []MoveEntity
	Abilities []AbilityEntity
	Types     []TypeEntity
	Stats     []StatEntity
}

// MoveEntity is a move together with the learn details of the first
// creature that referenced it.
type MoveEntity struct {
	Name                string       `json:"name"`
	VersionGroupDetails []MoveDetail `json:"version_group_details"`
}

// MoveDetail is a VersionDetail reduced to bare names.
type MoveDetail struct {
	LevelLearnedAt  *int   `json:"level_learned_at"`
	MoveLearnMethod string `json:"move_learn_method"`
	VersionGroup    string `json:"version_group"`
}

// AbilityEntity keeps the slot and hidden flag of the first creature
// that referenced the ability.
type AbilityEntity struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
	Slot     int    `json:"slot"`
}

// TypeEntity keeps the slot of the first creature that referenced the
// type.
type TypeEntity struct {
	Name string `json:"name"`
	Slot int    `json:"slot"`
}

// StatEntity keeps the values of the first creature that referenced the
// stat.
type StatEntity struct {
	Name     string `json:"name"`
	BaseStat *int   `json:"base_stat"`
	Effort   *int   `json:"effort"`
}
