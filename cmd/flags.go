package cmd

import (
	"fmt"
	"os"

	app "github.com/kriptogan/dexnorm/pkg"
	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command)

// applyFlags collects options from flags set by the user and applies
// them on top of the loaded configuration.
func applyFlags(cmd *cobra.Command, fs ...funcFlag) {
	for _, f := range fs {
		f(cmd)
	}
	cfg.Update(opts)
}

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

func assetsDirFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("assets-dir") {
		return
	}
	s, _ := cmd.Flags().GetString("assets-dir")
	opts = append(opts, config.OptAssetsDir(s))
}

func rawFileFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("raw-file") {
		return
	}
	s, _ := cmd.Flags().GetString("raw-file")
	opts = append(opts, config.OptRawFile(s))
}

func backupDirFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("backup-dir") {
		return
	}
	s, _ := cmd.Flags().GetString("backup-dir")
	opts = append(opts, config.OptBackupDir(s))
}

func jobsFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("jobs") {
		return
	}
	i, _ := cmd.Flags().GetInt("jobs")
	opts = append(opts, config.OptJobsNumber(i))
}

func priorityFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("priority") {
		return
	}
	ss, _ := cmd.Flags().GetStringSlice("priority")
	opts = append(opts, config.OptReleasesPriority(ss))
}

func allowedFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("allowed") {
		return
	}
	ss, _ := cmd.Flags().GetStringSlice("allowed")
	opts = append(opts, config.OptReleasesAllowed(ss))
}

func noEntitiesFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("no-entities") {
		return
	}
	b, _ := cmd.Flags().GetBool("no-entities")
	opts = append(opts, config.OptPipelineWithEntities(!b))
}

func creaturesFileFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("output") {
		return
	}
	s, _ := cmd.Flags().GetString("output")
	opts = append(opts, config.OptCreaturesFile(s))
}

func formatFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("format") {
		return
	}
	s, _ := cmd.Flags().GetString("format")
	opts = append(opts, config.OptCoverageFormat(s))
}

func examplesFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("examples") {
		return
	}
	i, _ := cmd.Flags().GetInt("examples")
	opts = append(opts, config.OptCoverageExamples(i))
}

func bundleFileFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("bundle-file") {
		return
	}
	s, _ := cmd.Flags().GetString("bundle-file")
	opts = append(opts, config.OptBundleFile(s))
}

func batchSizeFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("batch-size") {
		return
	}
	i, _ := cmd.Flags().GetInt("batch-size")
	opts = append(opts, config.OptDatabaseBatchSize(i))
}
