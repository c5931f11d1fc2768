// Package config provides configuration management for dexnorm.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Data: assets_dir, raw_file, creatures_file, backup_dir, bundle_file
//   - Releases: priority, allowed
//   - Pipeline: with_entities
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Coverage.Format, Coverage.Examples (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use DEXNORM_ prefix with underscores for nesting:
//
//	DEXNORM_DATA_ASSETS_DIR=app/src/main/assets
//	DEXNORM_RELEASES_PRIORITY="scarlet-violet sword-shield"
//	DEXNORM_DATABASE_HOST=localhost
//	DEXNORM_LOG_LEVEL=info
//	DEXNORM_JOBS_NUMBER=8
package config

import (
	"path/filepath"
	"runtime"
	"slices"

	"github.com/kriptogan/dexnorm/pkg/release"
)

// Config represents the complete dexnorm configuration.
type Config struct {
	// Data contains locations of input and output files.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// Releases contains the version priority policy.
	Releases ReleasesConfig `mapstructure:"releases" yaml:"releases"`

	// Pipeline contains settings of the normalization run.
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline"`

	// Coverage contains settings of the coverage command.
	Coverage CoverageConfig `mapstructure:"coverage" yaml:"coverage"`

	// Database contains PostgreSQL connection settings used by publish.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DataConfig contains locations of the asset files. Relative paths are
// resolved from the working directory.
type DataConfig struct {
	// AssetsDir is the directory of the application assets.
	AssetsDir string `mapstructure:"assets_dir" yaml:"assets_dir"`

	// RawFile is the raw collection file name inside AssetsDir.
	RawFile string `mapstructure:"raw_file" yaml:"raw_file"`

	// CreaturesFile is the normalized collection file name inside AssetsDir.
	CreaturesFile string `mapstructure:"creatures_file" yaml:"creatures_file"`

	// BackupDir keeps copies of replaced files. Empty means AssetsDir.
	BackupDir string `mapstructure:"backup_dir" yaml:"backup_dir"`

	// BundleFile is the SQLite bundle file name inside AssetsDir.
	BundleFile string `mapstructure:"bundle_file" yaml:"bundle_file"`
}

// ReleasesConfig defines which releases are kept and which one wins.
type ReleasesConfig struct {
	// Priority lists releases from the most to the least authoritative.
	Priority []string `mapstructure:"priority" yaml:"priority"`

	// Allowed lists releases whose move details are kept.
	Allowed []string `mapstructure:"allowed" yaml:"allowed"`
}

// PipelineConfig contains settings of the normalization run.
type PipelineConfig struct {
	// WithEntities is true if entity tables are created together with
	// the normalized collection.
	WithEntities bool `mapstructure:"with_entities" yaml:"with_entities"`
}

// CoverageConfig contains settings of the coverage report.
type CoverageConfig struct {
	// Format of the report, 'yaml' or 'json'.
	Format string `mapstructure:"format" yaml:"format"`

	// Examples is the number of moves lacking the top release to list.
	Examples int `mapstructure:"examples" yaml:"examples"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows sent per COPY batch during publish.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Data: DataConfig{
			AssetsDir:     filepath.Join("app", "src", "main", "assets"),
			RawFile:       "pokemon_data.json",
			CreaturesFile: "pokemons.json",
			BundleFile:    "pokedex.sqlite",
		},
		Releases: ReleasesConfig{
			Priority: slices.Clone(release.DefaultPriority),
			Allowed:  slices.Clone(release.DefaultPriority),
		},
		Pipeline: PipelineConfig{
			WithEntities: true,
		},
		Coverage: CoverageConfig{
			Format:   "yaml",
			Examples: 10,
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "dexnorm",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}

// Policy returns the version priority policy of the configuration.
func (c *Config) Policy() release.Policy {
	return release.New(c.Releases.Priority, c.Releases.Allowed)
}

// RawPath returns the path of the raw collection.
func (c *Config) RawPath() string {
	return filepath.Join(c.Data.AssetsDir, c.Data.RawFile)
}

// CreaturesPath returns the path of the normalized collection.
func (c *Config) CreaturesPath() string {
	return filepath.Join(c.Data.AssetsDir, c.Data.CreaturesFile)
}

// AssetPath returns the path of a file inside the assets directory.
func (c *Config) AssetPath(file string) string {
	return filepath.Join(c.Data.AssetsDir, file)
}

// BundlePath returns the path of the SQLite bundle.
func (c *Config) BundlePath() string {
	return filepath.Join(c.Data.AssetsDir, c.Data.BundleFile)
}

// BackupDir returns the directory for backup copies.
func (c *Config) BackupDir() string {
	if c.Data.BackupDir == "" {
		return c.Data.AssetsDir
	}
	return c.Data.BackupDir
}
