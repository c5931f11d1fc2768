package iopipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kriptogan/dexnorm/internal/iorecords"
	app "github.com/kriptogan/dexnorm/pkg"
	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/kriptogan/dexnorm/pkg/lifecycle"
)

// Metadata describes the generated asset set. It is derived from the
// input and settings only, so unchanged input gives identical metadata.
type Metadata struct {
	TotalPokemon   int          `json:"total_pokemon"`
	Version        string       `json:"version"`
	Description    string       `json:"description"`
	SourceFile     string       `json:"source_file"`
	SourceModified string       `json:"source_modified"`
	LevelUpMoves   int          `json:"level_up_moves"`
	Releases       ReleasesInfo `json:"releases"`
	Tables         []TableInfo  `json:"tables"`
}

// ReleasesInfo records the version priority policy of the run.
type ReleasesInfo struct {
	Priority []string `json:"priority"`
	Allowed  []string `json:"allowed"`
}

// TableInfo is the size of one entity table.
type TableInfo struct {
	File    string `json:"file"`
	Records int    `json:"records"`
}

func newMetadata(
	cfg *config.Config,
	res *lifecycle.Result,
	rawPath string,
) (Metadata, error) {
	var meta Metadata
	info, err := os.Stat(rawPath)
	if err != nil {
		return meta, iorecords.ReadFileError(rawPath, err)
	}

	policy := cfg.Policy()
	meta = Metadata{
		TotalPokemon: len(res.Creatures),
		Version:      app.Version,
		Description: "Creatures with level-up moves resolved to the " +
			"highest priority release",
		SourceFile:     filepath.Base(rawPath),
		SourceModified: info.ModTime().UTC().Format(time.RFC3339),
		LevelUpMoves:   res.Moves.Resolved,
		Releases: ReleasesInfo{
			Priority: policy.Priority(),
			Allowed:  policy.AllowedList(),
		},
		Tables: []TableInfo{},
	}
	if cfg.Pipeline.WithEntities {
		meta.Tables = []TableInfo{
			{File: MovesFile, Records: len(res.Tables.Moves)},
			{File: AbilitiesFile, Records: len(res.Tables.Abilities)},
			{File: TypesFile, Records: len(res.Tables.Types)},
			{File: StatsFile, Records: len(res.Tables.Stats)},
		}
	}
	return meta, nil
}
