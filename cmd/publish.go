package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iodb"
	"github.com/kriptogan/dexnorm/internal/iopublish"
	"github.com/spf13/cobra"
)

// getPublishCmd returns the publish command.
func getPublishCmd() *cobra.Command {
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish normalized data to PostgreSQL",
		Long: `Normalize the raw collection and load it into PostgreSQL.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Creates or updates tables with GORM AutoMigrate
  3. Replaces content of all tables in one transaction

If anything fails, the previously published data stays intact.

Examples:
  dexnorm publish
  DEXNORM_DATABASE_HOST=db.local dexnorm publish --batch-size 10000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPublish(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	publishCmd.Flags().Int("batch-size", 0, "rows per COPY batch")

	return publishCmd
}

func runPublish(cmd *cobra.Command) error {
	applyFlags(cmd, batchSizeFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	return iopublish.New(cfg, op).Publish(ctx)
}
