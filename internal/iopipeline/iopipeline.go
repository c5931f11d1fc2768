// Package iopipeline runs the normalization of the raw creature
// collection and persists the asset files.
package iopipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/kriptogan/dexnorm/internal/iofs"
	"github.com/kriptogan/dexnorm/internal/iorecords"
	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/kriptogan/dexnorm/pkg/creature"
	"github.com/kriptogan/dexnorm/pkg/dedup"
	"github.com/kriptogan/dexnorm/pkg/lifecycle"
	"github.com/kriptogan/dexnorm/pkg/normalize"
	"github.com/kriptogan/dexnorm/pkg/release"
	"github.com/kriptogan/dexnorm/pkg/resolve"
	"golang.org/x/sync/errgroup"
)

// Entity table file names inside the assets directory.
const (
	MovesFile     = "moves.json"
	AbilitiesFile = "abilities.json"
	TypesFile     = "types.json"
	StatsFile     = "stats.json"
	MetadataFile  = "metadata.json"
)

type pipeline struct {
	cfg    *config.Config
	policy release.Policy
	// progress enables the progress bar, only Run uses it.
	progress bool
}

// New creates a Pipeline for the given configuration.
func New(cfg *config.Config) lifecycle.Pipeline {
	return &pipeline{cfg: cfg, policy: cfg.Policy()}
}

// Transform implements lifecycle.Pipeline.
func (p *pipeline) Transform(
	ctx context.Context,
	raws []creature.Raw,
) (*lifecycle.Result, error) {
	creatures, moves, err := p.normalizeAll(ctx, raws)
	if err != nil {
		return nil, err
	}

	for i := range creatures {
		normalize.SortMoves(creatures[i].LevelUpMoves)
	}

	res := &lifecycle.Result{
		Creatures: creatures,
		Moves:     moves,
		Tables:    emptyTables(),
	}
	if p.cfg.Pipeline.WithEntities {
		res.Tables, res.Entities = dedup.Tables(raws)
	}
	return res, nil
}

// normalizeAll runs normalization of raw records over JobsNumber
// workers. Every worker writes its result at the index of its input.
func (p *pipeline) normalizeAll(
	ctx context.Context,
	raws []creature.Raw,
) ([]creature.Creature, resolve.Stats, error) {
	var total resolve.Stats
	res := make([]creature.Creature, len(raws))
	stats := make([]resolve.Stats, len(raws))

	var bar *pb.ProgressBar
	if p.progress {
		bar = newProgressBar(len(raws), "Normalizing: ")
		defer bar.Finish()
	}

	chIn := make(chan int)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for i := range raws {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- i:
			}
		}
		return nil
	})

	workerCount := p.cfg.JobsNumber
	if workerCount <= 0 {
		workerCount = 1
	}

	for range workerCount {
		g.Go(func() error {
			for i := range chIn {
				if err := gCtx.Err(); err != nil {
					return err
				}
				res[i], stats[i] = normalize.Record(p.policy, raws[i])
				if bar != nil {
					bar.Increment()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, total, PipelineCancelledError(err)
	}

	for i := range stats {
		total.Add(stats[i])
	}
	return res, total, nil
}

// Run implements lifecycle.Pipeline.
func (p *pipeline) Run(ctx context.Context) (*lifecycle.Summary, error) {
	start := time.Now()
	p.progress = true

	rawPath := p.cfg.RawPath()
	raws, err := iorecords.Load(rawPath)
	if err != nil {
		return nil, err
	}
	gn.Info(
		"Loaded <em>%s</em> creatures from %s",
		humanize.Comma(int64(len(raws))), rawPath,
	)

	res, err := p.Transform(ctx, raws)
	if err != nil {
		return nil, err
	}

	outputs, err := p.outputs(res, rawPath)
	if err != nil {
		return nil, err
	}

	summary := &lifecycle.Summary{
		Records:  len(res.Creatures),
		Moves:    res.Moves,
		Entities: res.Entities,
	}

	if err = ctx.Err(); err != nil {
		return nil, PipelineCancelledError(err)
	}

	backupDir := p.cfg.BackupDir()
	for _, v := range outputs {
		rr, err := iofs.WriteFile(v.path, backupDir, v.data)
		if err != nil {
			return nil, err
		}
		summary.Files = append(summary.Files, lifecycle.FileStat{
			Path:       rr.Path,
			BackupPath: rr.BackupPath,
			SizeBefore: rr.SizeBefore,
			SizeAfter:  rr.SizeAfter,
		})
	}

	summary.Duration = time.Since(start)
	report(summary)
	return summary, nil
}

type output struct {
	path string
	data []byte
}

// outputs encodes every asset file before anything is written, so an
// encoding failure leaves all files untouched.
func (p *pipeline) outputs(
	res *lifecycle.Result,
	rawPath string,
) ([]output, error) {
	type item struct {
		file string
		val  any
	}
	items := []item{{p.cfg.Data.CreaturesFile, res.Creatures}}
	if p.cfg.Pipeline.WithEntities {
		items = append(items,
			item{MovesFile, res.Tables.Moves},
			item{AbilitiesFile, res.Tables.Abilities},
			item{TypesFile, res.Tables.Types},
			item{StatsFile, res.Tables.Stats},
		)
	}
	meta, err := newMetadata(p.cfg, res, rawPath)
	if err != nil {
		return nil, err
	}
	items = append(items, item{MetadataFile, meta})

	outs := make([]output, 0, len(items))
	for _, v := range items {
		data, err := iorecords.Encode(v.val)
		if err != nil {
			return nil, err
		}
		outs = append(outs, output{path: p.cfg.AssetPath(v.file), data: data})
	}
	return outs, nil
}

func report(s *lifecycle.Summary) {
	gn.Info(
		"Normalized <em>%s</em> creatures, kept <em>%s</em> level-up moves, "+
			"dropped %s",
		humanize.Comma(int64(s.Records)),
		humanize.Comma(int64(s.Moves.Resolved)),
		humanize.Comma(int64(s.Moves.Empty)),
	)
	refs := s.Entities.Skipped()
	if s.Moves.MissingName+s.Moves.BadDetails+refs > 0 {
		gn.Warn(
			"Skipped %s moves without a name, %s incomplete move details "+
				"and %s entity references without a name",
			humanize.Comma(int64(s.Moves.MissingName)),
			humanize.Comma(int64(s.Moves.BadDetails)),
			humanize.Comma(int64(refs)),
		)
	}

	e := s.Entities
	if e.Moves.Seen > 0 {
		gn.Info(
			"Entity tables: %s moves, %s abilities, %s types, %s stats "+
				"(%s duplicate references dropped)",
			humanize.Comma(int64(e.Moves.Unique)),
			humanize.Comma(int64(e.Abilities.Unique)),
			humanize.Comma(int64(e.Types.Unique)),
			humanize.Comma(int64(e.Stats.Unique)),
			humanize.Comma(int64(e.Moves.Duplicates()+
				e.Abilities.Duplicates()+
				e.Types.Duplicates()+
				e.Stats.Duplicates())),
		)
	}

	for _, f := range s.Files {
		gn.Message(
			"%s: %s -> %s",
			f.Path,
			humanize.Bytes(uint64(f.SizeBefore)),
			humanize.Bytes(uint64(f.SizeAfter)),
		)
		slog.Info("Asset file written",
			"path", f.Path,
			"backup", f.BackupPath,
			"size_before", f.SizeBefore,
			"size_after", f.SizeAfter,
		)
	}

	gn.Info("Normalization finished in %s",
		gnfmt.TimeString(s.Duration.Seconds()))
	slog.Info("Normalization finished",
		"records", s.Records,
		"moves_resolved", s.Moves.Resolved,
		"moves_empty", s.Moves.Empty,
		"moves_missing_name", s.Moves.MissingName,
		"bad_details", s.Moves.BadDetails,
		"duration", s.Duration,
	)
}

func emptyTables() creature.Tables {
	return creature.Tables{
		Moves:     []creature.MoveEntity{},
		Abilities: []creature.AbilityEntity{},
		Types:     []creature.TypeEntity{},
		Stats:     []creature.StatEntity{},
	}
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
