package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn, err),
	}
}

func CopyFileError(file string, err error) error {
	msg := "Cannot copy config file to %s"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot copy file: %w",
			fn, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
		Msg:  msg,
		Vars: vars,
	}
}

// StageFileError is returned when new content for a file cannot be
// written. The live file is not changed.
func StageFileError(live string, err error) error {
	msg := "Cannot prepare new content for <em>%s</em>, file is unchanged"
	vars := []any{live}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StageFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot stage %s: %w", fn, live, err),
	}
}

// BackupFileError is returned when the live file cannot be copied to
// the backup directory. The live file is not changed.
func BackupFileError(live, backupDir string, err error) error {
	msg := `Cannot back up <em>%s</em> to <em>%s</em>, file is unchanged

<em>Possible causes:</em>
  - Backup directory is not writable
  - Backup path exists and is not a directory
  - Disk is full

<em>How to fix:</em>
  - Check the 'data.backup_dir' setting
  - Free some disk space and run the command again`
	vars := []any{live, backupDir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BackupFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot back up %s: %w",
			fn, live, err),
	}
}

// ReplaceFileError is returned when the staged file cannot take the
// place of the live file.
func ReplaceFileError(live string, err error) error {
	msg := "Cannot replace <em>%s</em>"
	vars := []any{live}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReplaceFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot replace %s: %w", fn, live, err),
	}
}
