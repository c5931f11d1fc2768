// Package iobundle writes the normalized collection into a single
// SQLite file shipped with the offline application.
package iobundle

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iofs"
	"github.com/kriptogan/dexnorm/internal/iopipeline"
	"github.com/kriptogan/dexnorm/internal/iorecords"
	app "github.com/kriptogan/dexnorm/pkg"
	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/kriptogan/dexnorm/pkg/lifecycle"
	"github.com/kriptogan/dexnorm/pkg/schema"
	_ "modernc.org/sqlite"
)

type bundler struct {
	cfg *config.Config
}

// New creates a Bundler for the given configuration.
func New(cfg *config.Config) lifecycle.Bundler {
	return &bundler{cfg: cfg}
}

// Bundle implements lifecycle.Bundler.
func (b *bundler) Bundle(ctx context.Context) (lifecycle.FileStat, error) {
	var res lifecycle.FileStat

	rawPath := b.cfg.RawPath()
	raws, err := iorecords.Load(rawPath)
	if err != nil {
		return res, err
	}

	out, err := iopipeline.New(b.cfg).Transform(ctx, raws)
	if err != nil {
		return res, err
	}

	info, err := Info(b.cfg, out, rawPath)
	if err != nil {
		return res, err
	}
	tables := schema.Build(out.Creatures, out.Tables, info)

	path := b.cfg.BundlePath()
	rr, err := iofs.Replace(path, b.cfg.BackupDir(), func(stage string) error {
		return Write(ctx, stage, tables)
	})
	if err != nil {
		return res, err
	}

	res = lifecycle.FileStat{
		Path:       rr.Path,
		BackupPath: rr.BackupPath,
		SizeBefore: rr.SizeBefore,
		SizeAfter:  rr.SizeAfter,
	}
	gn.Info(
		"Bundle <em>%s</em> has %s creatures (%s)",
		path,
		humanize.Comma(int64(len(out.Creatures))),
		humanize.Bytes(uint64(res.SizeAfter)),
	)
	return res, nil
}

// Info returns key-value pairs that describe the bundle content.
func Info(
	cfg *config.Config,
	res *lifecycle.Result,
	rawPath string,
) ([]schema.BundleInfo, error) {
	stat, err := os.Stat(rawPath)
	if err != nil {
		return nil, iorecords.ReadFileError(rawPath, err)
	}
	policy := cfg.Policy()
	return []schema.BundleInfo{
		{Key: "version", Value: app.Version},
		{Key: "total_pokemon", Value: strconv.Itoa(len(res.Creatures))},
		{Key: "level_up_moves", Value: strconv.Itoa(res.Moves.Resolved)},
		{Key: "releases_priority", Value: strings.Join(policy.Priority(), ",")},
		{Key: "releases_allowed", Value: strings.Join(policy.AllowedList(), ",")},
		{
			Key:   "source_modified",
			Value: stat.ModTime().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Write creates all tables in a SQLite file at path and fills them in a
// single transaction.
func Write(ctx context.Context, path string, tables []schema.Table) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return BundleCreateError(path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return BundleCreateError(path, err)
	}
	defer tx.Rollback()

	for _, t := range tables {
		stmts := append([]string{t.Model.TableDDL()}, t.Model.IndexDDL()...)
		for _, q := range stmts {
			if _, err = tx.ExecContext(ctx, q); err != nil {
				return BundleCreateError(path, err)
			}
		}
		if err = insertRows(ctx, tx, t); err != nil {
			return BundleWriteError(t.Model.TableName(), err)
		}
		slog.Debug("Bundle table written",
			"table", t.Model.TableName(),
			"rows", len(t.Rows),
		)
	}

	if err = tx.Commit(); err != nil {
		return BundleWriteError(path, err)
	}
	return db.Close()
}

func insertRows(ctx context.Context, tx *sql.Tx, t schema.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}
	q, err := schema.InsertSQL(t.Model)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return err
		}
	}
	return nil
}
