/*
Copyright © 2025 The dexnorm Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iofs"
	"github.com/kriptogan/dexnorm/internal/iologger"
	app "github.com/kriptogan/dexnorm/pkg"
	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

func getRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "dexnorm",
		Short:   "Normalizes creature data into offline app assets",
		Long: `dexnorm turns the raw creature collection downloaded from the
game-data API into the compact asset set of the offline app.

Each creature keeps one canonical learn level per level-up move, chosen
from the most recent allowed release. Moves, abilities, types and stats
are also written as deduplicated entity tables. Previous asset files are
backed up before they are replaced.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (DEXNORM_*)
  3. Config file (~/.config/dexnorm/config.yaml)
  4. Built-in defaults

Examples:
  dexnorm normalize
  dexnorm normalize --assets-dir ./assets -p scarlet-violet,sword-shield
  dexnorm coverage --format json
  dexnorm bundle
  dexnorm publish`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "dexnorm version" prefix
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	cmd.Flags().BoolP("version", "V", false, "version for dexnorm")

	pf := cmd.PersistentFlags()
	pf.StringP("assets-dir", "a", "", "directory with raw and output assets")
	pf.String("raw-file", "", "raw collection file name")
	pf.String("backup-dir", "", "directory for backups of replaced files")
	pf.IntP("jobs", "j", 0, "number of concurrent workers")
	pf.StringSliceP("priority", "p", nil,
		"releases ordered from most to least preferred")
	pf.StringSlice("allowed", nil, "releases considered for learn levels")

	cmd.AddCommand(
		getNormalizeCmd(),
		getCoverageCmd(),
		getBundleCmd(),
		getPublishCmd(),
	)

	return cmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Flags override file and environment settings
	applyFlags(cmd,
		assetsDirFlag,
		rawFileFlag,
		backupDirFlag,
		jobsFlag,
		priorityFlag,
		allowedFlag,
	)

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("DEXNORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Data configuration
	v.BindEnv("data.assets_dir", "DEXNORM_DATA_ASSETS_DIR")
	v.BindEnv("data.raw_file", "DEXNORM_DATA_RAW_FILE")
	v.BindEnv("data.creatures_file", "DEXNORM_DATA_CREATURES_FILE")
	v.BindEnv("data.backup_dir", "DEXNORM_DATA_BACKUP_DIR")
	v.BindEnv("data.bundle_file", "DEXNORM_DATA_BUNDLE_FILE")

	// Release policy
	v.BindEnv("releases.priority", "DEXNORM_RELEASES_PRIORITY")
	v.BindEnv("releases.allowed", "DEXNORM_RELEASES_ALLOWED")

	// Pipeline configuration
	v.BindEnv("pipeline.with_entities", "DEXNORM_PIPELINE_WITH_ENTITIES")

	// Database configuration
	v.BindEnv("database.host", "DEXNORM_DATABASE_HOST")
	v.BindEnv("database.port", "DEXNORM_DATABASE_PORT")
	v.BindEnv("database.user", "DEXNORM_DATABASE_USER")
	v.BindEnv("database.password", "DEXNORM_DATABASE_PASSWORD")
	v.BindEnv("database.database", "DEXNORM_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "DEXNORM_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "DEXNORM_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "DEXNORM_LOG_LEVEL")
	v.BindEnv("log.format", "DEXNORM_LOG_FORMAT")
	v.BindEnv("log.destination", "DEXNORM_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "DEXNORM_JOBS_NUMBER")

	v.AutomaticEnv()
}
