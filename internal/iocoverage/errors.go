package iocoverage

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/pkg/errcode"
)

func CoverageFormatError(format string) error {
	msg := "Unknown report format <em>%s</em>, use 'yaml' or 'json'"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CoverageFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown format %q", fn, format),
	}
}

func CoverageRenderError(format string, err error) error {
	msg := "Cannot render coverage report as <em>%s</em>"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CoverageRenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot render report: %w", fn, err),
	}
}
