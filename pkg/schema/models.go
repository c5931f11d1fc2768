// Package schema provides table models shared by the SQLite bundle and
// the PostgreSQL publish target.
package schema

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Creature is a normalized creature without its lists.
type Creature struct {
	// ID is the creature number from the game-data API.
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`

	// Name is the creature name as served by the API.
	Name string `db:"name" ddl:"TEXT NOT NULL" gorm:"not null"`

	// Height in decimetres, NULL if unknown.
	Height *int `db:"height" ddl:"INTEGER"`

	// Weight in hectograms, NULL if unknown.
	Weight *int `db:"weight" ddl:"INTEGER"`

	// BaseExperience is NULL if unknown.
	BaseExperience *int `db:"base_experience" ddl:"INTEGER"`

	// SpritePath is the local sprite file name.
	SpritePath string `db:"sprite_path" ddl:"TEXT NOT NULL" gorm:"not null"`
}

// CreatureType links a creature to a type.
type CreatureType struct {
	CreatureID int    `db:"creature_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	Position   int    `db:"position" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	Slot       int    `db:"slot" ddl:"INTEGER NOT NULL"`
	TypeID     string `db:"type_id" ddl:"TEXT NOT NULL"`
	TypeName   string `db:"type_name" ddl:"TEXT NOT NULL"`
}

// CreatureStat is the value of a stat for a creature.
type CreatureStat struct {
	CreatureID int    `db:"creature_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	Position   int    `db:"position" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	StatID     string `db:"stat_id" ddl:"TEXT NOT NULL"`
	StatName   string `db:"stat_name" ddl:"TEXT NOT NULL"`
	BaseStat   *int   `db:"base_stat" ddl:"INTEGER"`
	Effort     *int   `db:"effort" ddl:"INTEGER"`
}

// CreatureAbility links a creature to an ability.
type CreatureAbility struct {
	CreatureID  int    `db:"creature_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	Position    int    `db:"position" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	AbilityID   string `db:"ability_id" ddl:"TEXT NOT NULL"`
	AbilityName string `db:"ability_name" ddl:"TEXT NOT NULL"`
	IsHidden    bool   `db:"is_hidden" ddl:"BOOLEAN NOT NULL"`
	Slot        int    `db:"slot" ddl:"INTEGER NOT NULL"`
}

// LevelUpMove is a canonical move entry of a creature. Position keeps
// the level order of the normalized record.
type LevelUpMove struct {
	CreatureID     int    `db:"creature_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	Position       int    `db:"position" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	MoveID         string `db:"move_id" ddl:"TEXT NOT NULL"`
	MoveName       string `db:"move_name" ddl:"TEXT NOT NULL"`
	LevelLearnedAt *int   `db:"level_learned_at" ddl:"INTEGER"`
	VersionGroup   string `db:"version_group" ddl:"TEXT NOT NULL"`
}

// Move is an entry of the moves entity table.
type Move struct {
	// ID is UUID v5 of the move name.
	ID       string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`
	Name     string `db:"name" ddl:"TEXT NOT NULL UNIQUE" gorm:"not null;uniqueIndex"`
	Position int    `db:"position" ddl:"INTEGER NOT NULL"`
}

// MoveDetail is a learn detail of a move entity.
type MoveDetail struct {
	MoveID          string `db:"move_id" ddl:"TEXT NOT NULL" gorm:"primaryKey"`
	Position        int    `db:"position" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	LevelLearnedAt  *int   `db:"level_learned_at" ddl:"INTEGER"`
	MoveLearnMethod string `db:"move_learn_method" ddl:"TEXT NOT NULL"`
	VersionGroup    string `db:"version_group" ddl:"TEXT NOT NULL"`
}

// Ability is an entry of the abilities entity table.
type Ability struct {
	ID       string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`
	Name     string `db:"name" ddl:"TEXT NOT NULL UNIQUE" gorm:"not null;uniqueIndex"`
	Position int    `db:"position" ddl:"INTEGER NOT NULL"`
	IsHidden bool   `db:"is_hidden" ddl:"BOOLEAN NOT NULL"`
	Slot     int    `db:"slot" ddl:"INTEGER NOT NULL"`
}

// Type is an entry of the types entity table.
type Type struct {
	ID       string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`
	Name     string `db:"name" ddl:"TEXT NOT NULL UNIQUE" gorm:"not null;uniqueIndex"`
	Position int    `db:"position" ddl:"INTEGER NOT NULL"`
	Slot     int    `db:"slot" ddl:"INTEGER NOT NULL"`
}

// Stat is an entry of the stats entity table.
type Stat struct {
	ID       string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`
	Name     string `db:"name" ddl:"TEXT NOT NULL UNIQUE" gorm:"not null;uniqueIndex"`
	Position int    `db:"position" ddl:"INTEGER NOT NULL"`
	BaseStat *int   `db:"base_stat" ddl:"INTEGER"`
	Effort   *int   `db:"effort" ddl:"INTEGER"`
}

// BundleInfo is a key-value description of the stored data.
type BundleInfo struct {
	Key   string `db:"key" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`
	Value string `db:"value" ddl:"TEXT NOT NULL" gorm:"not null"`
}
