package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iobundle"
	"github.com/spf13/cobra"
)

// getBundleCmd returns the bundle command.
func getBundleCmd() *cobra.Command {
	bundleCmd := &cobra.Command{
		Use:   "bundle",
		Short: "Create SQLite bundle for the offline app",
		Long: `Normalize the raw collection and store creatures, their level-up
moves and all entity tables in one SQLite file.

The previous bundle is backed up before it is replaced.

Examples:
  dexnorm bundle
  dexnorm bundle --bundle-file dex.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBundle(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	bundleCmd.Flags().StringP("bundle-file", "b", "",
		"SQLite bundle file name")

	return bundleCmd
}

func runBundle(cmd *cobra.Command) error {
	applyFlags(cmd, bundleFileFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err := iobundle.New(cfg).Bundle(ctx)
	return err
}
