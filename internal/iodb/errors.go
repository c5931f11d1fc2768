package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/pkg/errcode"
)

// ConnectionError creates an error for failed PostgreSQL
// connections.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL at <em>%s:%d</em>

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database <em>%s</em> does not exist
  - User <em>%s</em> has wrong password or no access

<em>How to fix:</em>
  1. Start PostgreSQL and check it listens on the port
  2. Create the database: createdb %s
  3. Check database settings in config.yaml or DEXNORM_DATABASE_* variables`

	vars := []any{host, port, database, user, database}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: cannot connect to %s:%d/%s: %w",
			fn, host, port, database, err,
		),
	}
}

// NotConnectedError creates an error for operations attempted
// before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: not connected to database", fn),
	}
}

func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: table check %s: %w", fn, table, err),
	}
}

func QueryTablesError(err error) error {
	msg := "Cannot list database tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot query tables: %w", fn, err),
	}
}

func ScanTableError(err error) error {
	msg := "Cannot read database table names"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot scan table name: %w", fn, err),
	}
}

func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot drop %s: %w", fn, table, err),
	}
}
