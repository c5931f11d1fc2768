package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/kriptogan/dexnorm/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "dexnorm"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "dexnorm", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "dexnorm", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Data defaults
		assert.Equal(t,
			filepath.Join("app", "src", "main", "assets"), cfg.Data.AssetsDir)
		assert.Equal(t, "pokemon_data.json", cfg.Data.RawFile)
		assert.Equal(t, "pokemons.json", cfg.Data.CreaturesFile)
		assert.Equal(t, "", cfg.Data.BackupDir)
		assert.Equal(t, "pokedex.sqlite", cfg.Data.BundleFile)

		// Releases defaults
		assert.Equal(t, release.DefaultPriority, cfg.Releases.Priority)
		assert.Equal(t, release.DefaultPriority, cfg.Releases.Allowed)
		assert.True(t, cfg.Pipeline.WithEntities)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "dexnorm", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 5_000, cfg.Database.BatchSize)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})

	t.Run("default priority is not shared", func(t *testing.T) {
		c := config.New()
		c.Releases.Priority[0] = "red-blue"
		assert.Equal(t, "scarlet-violet", release.DefaultPriority[0])
	})
}

func TestPaths(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptAssetsDir("/data/assets")})

	assert.Equal(t, "/data/assets/pokemon_data.json", cfg.RawPath())
	assert.Equal(t, "/data/assets/pokemons.json", cfg.CreaturesPath())
	assert.Equal(t, "/data/assets/moves.json", cfg.AssetPath("moves.json"))
	assert.Equal(t, "/data/assets/pokedex.sqlite", cfg.BundlePath())
	assert.Equal(t, "/data/assets", cfg.BackupDir())

	cfg.Update([]config.Option{config.OptBackupDir("/data/backup")})
	assert.Equal(t, "/data/backup", cfg.BackupDir())
}

func TestPolicy(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptReleasesPriority([]string{"sword-shield", "scarlet-violet"}),
	})
	p := cfg.Policy()
	assert.Equal(t, 0, p.Rank("sword-shield"))
	assert.Equal(t, 1, p.Rank("scarlet-violet"))
	assert.Equal(t, release.Unranked, p.Rank("legends-arceus"))
	assert.True(t, p.Allowed("legends-arceus"))
}

func TestOptionReleases(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets list",
			input:    []string{"x-y", "sun-moon"},
			expected: []string{"x-y", "sun-moon"},
		},
		{
			name:     "splits env style value",
			input:    []string{"x-y sun-moon,  sword-shield"},
			expected: []string{"x-y", "sun-moon", "sword-shield"},
		},
		{
			name:     "ignores empty",
			input:    []string{"  ", ""},
			expected: release.DefaultPriority,
		},
		{
			name:     "ignores nil",
			input:    nil,
			expected: release.DefaultPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{
				config.OptReleasesPriority(tt.input),
				config.OptReleasesAllowed(tt.input),
			})
			assert.Equal(t, tt.expected, cfg.Releases.Priority)
			assert.Equal(t, tt.expected, cfg.Releases.Allowed)
		})
	}
}

func TestOptionAssetsDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid dir",
			input:    "/tmp/assets",
			expected: "/tmp/assets",
		},
		{
			name:     "trims whitespace",
			input:    "  assets  ",
			expected: "assets",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: filepath.Join("app", "src", "main", "assets"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptAssetsDir(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Data.AssetsDir)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid port",
			input:    3306,
			expected: 3306,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5432, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -100,
			expected: 5432, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabasePort(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid ssl mode - require",
			input:    "require",
			expected: "require",
		},
		{
			name:     "normalizes to lowercase",
			input:    "VERIFY-FULL",
			expected: "verify-full",
		},
		{
			name:     "ignores invalid value",
			input:    "invalid",
			expected: "disable", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseSSLMode(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionLog(t *testing.T) {
	tests := []struct {
		name     string
		opt      config.Option
		get      func(*config.Config) string
		expected string
	}{
		{
			name:     "level debug",
			opt:      config.OptLogLevel("DEBUG"),
			get:      func(c *config.Config) string { return c.Log.Level },
			expected: "debug",
		},
		{
			name:     "level invalid",
			opt:      config.OptLogLevel("trace"),
			get:      func(c *config.Config) string { return c.Log.Level },
			expected: "info",
		},
		{
			name:     "format text",
			opt:      config.OptLogFormat("text"),
			get:      func(c *config.Config) string { return c.Log.Format },
			expected: "text",
		},
		{
			name:     "format invalid",
			opt:      config.OptLogFormat("xml"),
			get:      func(c *config.Config) string { return c.Log.Format },
			expected: "json",
		},
		{
			name:     "destination stderr",
			opt:      config.OptLogDestination("stderr"),
			get:      func(c *config.Config) string { return c.Log.Destination },
			expected: "stderr",
		},
		{
			name:     "destination invalid",
			opt:      config.OptLogDestination("stdin"),
			get:      func(c *config.Config) string { return c.Log.Destination },
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.expected, tt.get(cfg))
		})
	}
}

func TestOptionCoverage(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCoverageFormat("JSON"),
		config.OptCoverageExamples(3),
	})
	assert.Equal(t, "json", cfg.Coverage.Format)
	assert.Equal(t, 3, cfg.Coverage.Examples)

	cfg.Update([]config.Option{
		config.OptCoverageFormat("csv"),
		config.OptCoverageExamples(0),
	})
	assert.Equal(t, "json", cfg.Coverage.Format)
	assert.Equal(t, 3, cfg.Coverage.Examples)
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid jobs number",
			input:    8,
			expected: 8,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: runtime.NumCPU(), // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -5,
			expected: runtime.NumCPU(), // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptJobsNumber(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("custom.host.com"),
			config.OptDatabaseUser("myuser"),
			config.OptLogLevel("debug"),
			config.OptPipelineWithEntities(false),
			config.OptJobsNumber(16),
		}

		cfg.Update(opts)

		assert.Equal(t, "custom.host.com", cfg.Database.Host)
		assert.Equal(t, "myuser", cfg.Database.User)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.False(t, cfg.Pipeline.WithEntities)
		assert.Equal(t, 16, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("first.host.com"),
			config.OptDatabaseHost("second.host.com"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second.host.com", cfg.Database.Host)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptAssetsDir("/assets"),
			config.OptRawFile("raw.json"),
			config.OptCreaturesFile("out.json"),
			config.OptBackupDir("/backup"),
			config.OptBundleFile("dex.db"),
			config.OptReleasesPriority([]string{"x-y"}),
			config.OptReleasesAllowed([]string{"x-y", "sun-moon"}),
			config.OptPipelineWithEntities(false),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(3306),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabaseBatchSize(10000),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		}
		original.Update(opts)

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Data, newCfg.Data)
		assert.Equal(t, original.Releases, newCfg.Releases)
		assert.Equal(t, original.Pipeline, newCfg.Pipeline)
		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptCoverageFormat("json"),
			config.OptCoverageExamples(42),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Equal(t, "yaml", newCfg.Coverage.Format)
		assert.Equal(t, 10, newCfg.Coverage.Examples)
	})
}
