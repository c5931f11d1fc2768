package iobundle

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/pkg/errcode"
)

func BundleCreateError(path string, err error) error {
	msg := "Cannot create SQLite bundle <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BundleCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create bundle %s: %w", fn, path, err),
	}
}

func BundleWriteError(target string, err error) error {
	msg := "Cannot write <em>%s</em> to SQLite bundle"
	vars := []any{target}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BundleWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, target, err),
	}
}
