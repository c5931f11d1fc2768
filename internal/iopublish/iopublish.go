// Package iopublish loads the normalized collection and entity tables
// into PostgreSQL. The schema is kept up to date by GORM AutoMigrate, the
// rows are replaced by COPY inside one transaction.
package iopublish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/kriptogan/dexnorm/internal/iobundle"
	"github.com/kriptogan/dexnorm/internal/iopipeline"
	"github.com/kriptogan/dexnorm/internal/iorecords"
	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/kriptogan/dexnorm/pkg/db"
	"github.com/kriptogan/dexnorm/pkg/lifecycle"
	"github.com/kriptogan/dexnorm/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type publisher struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a Publisher that works through a connected operator.
func New(cfg *config.Config, op db.Operator) lifecycle.Publisher {
	return &publisher{cfg: cfg, operator: op}
}

// Publish implements lifecycle.Publisher.
func (p *publisher) Publish(ctx context.Context) error {
	timeStart := time.Now()
	if p.operator.Pool() == nil {
		return NotConnectedError()
	}

	rawPath := p.cfg.RawPath()
	raws, err := iorecords.Load(rawPath)
	if err != nil {
		return err
	}

	res, err := iopipeline.New(p.cfg).Transform(ctx, raws)
	if err != nil {
		return err
	}

	info, err := iobundle.Info(p.cfg, res, rawPath)
	if err != nil {
		return err
	}
	tables := schema.Build(res.Creatures, res.Tables, info)

	if err = p.migrate(); err != nil {
		return err
	}

	rows, err := p.load(ctx, tables)
	if err != nil {
		return err
	}

	gn.Info(
		"Published %s rows of %d tables to <em>%s</em> in %s",
		humanize.Comma(int64(rows)),
		len(tables),
		p.cfg.Database.Database,
		gnfmt.TimeString(time.Since(timeStart).Seconds()),
	)
	return nil
}

// migrate creates or updates tables with GORM AutoMigrate.
func (p *publisher) migrate() error {
	sqlDB := stdlib.OpenDBFromPool(p.operator.Pool())
	defer sqlDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err = schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}
	return nil
}

// load truncates all tables and copies new rows in one transaction.
func (p *publisher) load(
	ctx context.Context,
	tables []schema.Table,
) (int, error) {
	tx, err := p.operator.Pool().Begin(ctx)
	if err != nil {
		return 0, TruncateError(err)
	}
	defer tx.Rollback(ctx)

	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = pgx.Identifier{t.Model.TableName()}.Sanitize()
	}
	q := fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(names, ", "))
	if _, err = tx.Exec(ctx, q); err != nil {
		return 0, TruncateError(err)
	}

	var total int
	for _, t := range tables {
		n, err := copyTable(ctx, tx, t, p.cfg.Database.BatchSize)
		if err != nil {
			return 0, err
		}
		total += n
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, CommitError(err)
	}
	return total, nil
}

func copyTable(
	ctx context.Context,
	tx pgx.Tx,
	t schema.Table,
	batchSize int,
) (int, error) {
	name := t.Model.TableName()
	cols := schema.Columns(t.Model)

	var total int
	for start := 0; start < len(t.Rows); start += batchSize {
		end := min(start+batchSize, len(t.Rows))
		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{name},
			cols,
			pgx.CopyFromRows(t.Rows[start:end]),
		)
		if err != nil {
			return 0, CopyError(name, err)
		}
		total += int(n)
	}

	slog.Info("Table published", "table", name, "rows", total)
	return total, nil
}
