package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptAssetsDir sets the directory of the application assets.
func OptAssetsDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data AssetsDir", s) {
			c.Data.AssetsDir = s
		}
	}
}

// OptRawFile sets the raw collection file name.
func OptRawFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data RawFile", s) {
			c.Data.RawFile = s
		}
	}
}

// OptCreaturesFile sets the normalized collection file name.
func OptCreaturesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data CreaturesFile", s) {
			c.Data.CreaturesFile = s
		}
	}
}

// OptBackupDir sets the directory for backup copies of replaced files.
func OptBackupDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data BackupDir", s) {
			c.Data.BackupDir = s
		}
	}
}

// OptBundleFile sets the SQLite bundle file name.
func OptBundleFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data BundleFile", s) {
			c.Data.BundleFile = s
		}
	}
}

// OptReleasesPriority sets the ordered list of releases, most
// authoritative first.
func OptReleasesPriority(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if isValidList("Releases Priority", ss) {
			c.Releases.Priority = ss
		}
	}
}

// OptReleasesAllowed sets releases whose move details are kept.
func OptReleasesAllowed(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if isValidList("Releases Allowed", ss) {
			c.Releases.Allowed = ss
		}
	}
}

// OptPipelineWithEntities sets whether entity tables are created.
func OptPipelineWithEntities(b bool) Option {
	return func(c *Config) {
		c.Pipeline.WithEntities = b
	}
}

// OptCoverageFormat sets the format of the coverage report.
// Valid values: "yaml", "json".
// Runtime-only field - not in ToOptions().
func OptCoverageFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Coverage.Format", s) {
			c.Coverage.Format = s
		}
	}
}

// OptCoverageExamples sets how many moves lacking the top release are
// listed in the coverage report.
// Runtime-only field - not in ToOptions().
func OptCoverageExamples(i int) Option {
	return func(c *Config) {
		if isValidInt("Coverage Examples", i) {
			c.Coverage.Examples = i
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per COPY batch.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// cleanList trims entries, drops empty ones and splits entries that
// hold several space or comma separated values, as environment
// variables do.
func cleanList(ss []string) []string {
	var res []string
	for _, v := range ss {
		fields := strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		res = append(res, fields...)
	}
	return res
}
