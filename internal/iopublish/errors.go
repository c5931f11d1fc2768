package iopublish

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/pkg/errcode"
)

// NotConnectedError creates an error for publishing without
// database connection.
func NotConnectedError() error {
	msg := "Publish attempted without database connection"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: not connected to database", fn),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>Possible causes:</em>
  - Connection pool not initialized
  - Database configuration issue

<em>How to fix:</em>
  1. Check database settings in config.yaml
  2. Run with log level "debug" and read the log file`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: failed to connect with GORM: %w", fn, err),
	}
}

// MigrateSchemaError creates an error for schema
// migration failures.
func MigrateSchemaError(err error) error {
	msg := `Cannot migrate database schema

<em>Possible causes:</em>
  - Insufficient database permissions
  - Tables were changed by hand and are incompatible

<em>How to fix:</em>
  1. Check database user has CREATE and ALTER permissions
  2. Drop the tables and publish again`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: failed to migrate schema: %w", fn, err),
	}
}

func TruncateError(err error) error {
	msg := "Cannot clear previously published tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.PublishTruncateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: truncate failed: %w", fn, err),
	}
}

func CopyError(table string, err error) error {
	msg := "Cannot copy rows into table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.PublishCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: copy into %s failed: %w", fn, table, err),
	}
}

func CommitError(err error) error {
	msg := "Cannot commit published data, database content is unchanged"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.PublishCommitError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: commit failed: %w", fn, err),
	}
}
