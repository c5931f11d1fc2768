// Package iorecords reads the raw creature collection and encodes asset
// files.
package iorecords

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/kriptogan/dexnorm/pkg/creature"
)

// Load reads the raw collection from a JSON array of creature documents.
func Load(path string) ([]creature.Raw, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, InputMissingError(path, err)
	}
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, ReadFileError(path, err)
	}

	var res []creature.Raw
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		return nil, InputDecodeError(path, err)
	}
	if len(res) == 0 {
		return nil, InputEmptyError(path)
	}

	slog.Info("Raw collection loaded", "path", path, "records", len(res))
	return res, nil
}

// Encode returns indented JSON of v followed by a newline. Values must
// not contain maps, so that the output is stable between runs.
func Encode(v any) ([]byte, error) {
	enc := gnfmt.GNjson{Pretty: true}
	res, err := enc.Encode(v)
	if err != nil {
		return nil, EncodeOutputError(err)
	}
	return append(res, '\n'), nil
}
