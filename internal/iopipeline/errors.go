package iopipeline

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/pkg/errcode"
)

// PipelineCancelledError is returned when normalization stops before
// completion. No asset file is changed.
func PipelineCancelledError(err error) error {
	msg := "Normalization was interrupted, asset files are unchanged"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PipelineCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: normalization interrupted: %w", fn, err),
	}
}
