package lifecycle

import (
	"context"
)

// Bundler writes the normalized collection and entity tables into a
// single SQLite file for offline use.
type Bundler interface {
	// Bundle builds the bundle and swaps it in place of the previous one.
	Bundle(ctx context.Context) (FileStat, error)
}

// Publisher loads the normalized collection and entity tables into
// PostgreSQL, replacing the previous content.
type Publisher interface {
	// Publish migrates the schema and copies all rows in one transaction.
	Publish(ctx context.Context) error
}
