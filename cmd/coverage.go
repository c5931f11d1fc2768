package cmd

import (
	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iocoverage"
	"github.com/kriptogan/dexnorm/internal/iorecords"
	"github.com/spf13/cobra"
)

// getCoverageCmd returns the coverage command.
func getCoverageCmd() *cobra.Command {
	coverageCmd := &cobra.Command{
		Use:   "coverage",
		Short: "Report release coverage of level-up moves",
		Long: `Count level-up details per allowed release in the raw collection
and list moves that have no data for the most preferred release.

The report is printed to STDOUT as YAML or JSON.

Examples:
  dexnorm coverage
  dexnorm coverage --format json --examples 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCoverage(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	coverageCmd.Flags().StringP("format", "f", "",
		"report format, 'yaml' or 'json'")
	coverageCmd.Flags().IntP("examples", "n", 0,
		"number of moves without top release to show")

	return coverageCmd
}

func runCoverage(cmd *cobra.Command) error {
	applyFlags(cmd, formatFlag, examplesFlag)

	raws, err := iorecords.Load(cfg.RawPath())
	if err != nil {
		return err
	}

	report := iocoverage.Analyze(cfg.Policy(), raws, cfg.Coverage.Examples)
	out, err := iocoverage.Render(report, cfg.Coverage.Format)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
