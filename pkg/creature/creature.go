package creature

// Name is a remote reference reduced to its name.
type Name struct {
	Name string `json:"name"`
}

// Creature is the normalized record written to the offline asset file.
// The JSON layout is read by the mobile application and must stay
// backward compatible.
type Creature struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         *int          `json:"height"`
	Weight         *int          `json:"weight"`
	BaseExperience *int          `json:"base_experience"`
	Types          []TypeSlot    `json:"types"`
	Stats          []StatValue   `json:"stats"`
	Abilities      []AbilitySlot `json:"abilities"`
	LevelUpMoves   []LevelUpMove `json:"level_up_moves"`
	SpritePath     string        `json:"sprite_path"`
}

// TypeSlot is a type assignment without its remote URL.
type TypeSlot struct {
	Slot int  `json:"slot"`
	Type Name `json:"type"`
}

// StatValue is a stat assignment without its remote URL.
type StatValue struct {
	BaseStat *int `json:"base_stat"`
	Effort   *int `json:"effort"`
	Stat     Name `json:"stat"`
}

// AbilitySlot is an ability assignment without its remote URL.
type AbilitySlot struct {
	Ability  Name `json:"ability"`
	IsHidden bool `json:"is_hidden"`
	Slot     int  `json:"slot"`
}

// LevelUpMove is the canonical move entry: the one (move, level,
// release) fact kept for a creature after version resolution.
type LevelUpMove struct {
	Name           string `json:"name"`
	LevelLearnedAt *int   `json:"level_learned_at"`
	VersionGroup   string `json:"version_group"`
}

// Level returns the level a move is learned at; a missing level counts
// as 0.
func (m LevelUpMove) Level() int {
	if m.LevelLearnedAt == nil {
		return 0
	}
	return *m.LevelLearnedAt
}
