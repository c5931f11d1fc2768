package iorecords

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/pkg/errcode"
)

// InputMissingError is returned when the raw collection does not exist.
func InputMissingError(path string, err error) error {
	msg := `Raw collection <em>%s</em> not found

<em>How to fix:</em>
  - Download the collection first
  - Check 'data.assets_dir' and 'data.raw_file' settings`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputMissingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: input %s is missing: %w", fn, path, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

// InputDecodeError is returned when the raw collection is not a JSON
// array of creature documents.
func InputDecodeError(path string, err error) error {
	msg := "Cannot decode <em>%s</em> as a list of creatures"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode %s: %w", fn, path, err),
	}
}

// InputEmptyError is returned when the raw collection has no records.
func InputEmptyError(path string) error {
	msg := "Raw collection <em>%s</em> has no records"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: input %s is empty", fn, path),
	}
}

func EncodeOutputError(err error) error {
	msg := "Cannot encode output data"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.EncodeOutputError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot encode output: %w", fn, err),
	}
}
