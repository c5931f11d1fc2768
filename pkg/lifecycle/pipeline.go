package lifecycle

import (
	"context"
	"time"

	"github.com/kriptogan/dexnorm/pkg/creature"
	"github.com/kriptogan/dexnorm/pkg/dedup"
	"github.com/kriptogan/dexnorm/pkg/resolve"
)

// Pipeline turns the raw creature collection into the normalized asset
// set.
//
// Processing is all-or-nothing: if anything fails before persistence,
// no output file is touched.
type Pipeline interface {
	// Transform normalizes raw records and, if configured, builds entity
	// tables. Output order equals input order.
	Transform(ctx context.Context, raws []creature.Raw) (*Result, error)

	// Run loads the raw collection, transforms it and replaces the asset
	// files, keeping backups of the previous ones.
	Run(ctx context.Context) (*Summary, error)
}

// Result is the in-memory outcome of Transform.
type Result struct {
	// Creatures are normalized records in input order.
	Creatures []creature.Creature

	// Tables are entity tables. They are empty when entities are
	// disabled.
	Tables creature.Tables

	// Moves tallies move resolution over the whole collection.
	Moves resolve.Stats

	// Entities tallies entity deduplication.
	Entities dedup.Stats
}

// FileStat describes one replaced file.
type FileStat struct {
	Path       string `json:"path"`
	BackupPath string `json:"backupPath,omitempty"`
	SizeBefore int64  `json:"sizeBefore"`
	SizeAfter  int64  `json:"sizeAfter"`
}

// Summary reports a completed Run.
type Summary struct {
	// Records is the number of normalized creatures.
	Records int

	// Moves tallies move resolution.
	Moves resolve.Stats

	// Entities tallies entity deduplication.
	Entities dedup.Stats

	// Files lists replaced files in the order they were written.
	Files []FileStat

	// Duration of the run.
	Duration time.Duration
}
