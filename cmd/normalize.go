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
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iopipeline"
	"github.com/spf13/cobra"
)

// getNormalizeCmd returns the normalize command.
func getNormalizeCmd() *cobra.Command {
	normalizeCmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize raw creature data into asset files",
		Long: `Normalize the raw creature collection into app assets.

This command:
  1. Reads the raw collection (pokemon_data.json by default)
  2. Keeps one level-up entry per move, taken from the most
     preferred allowed release
  3. Sorts moves of every creature by learn level
  4. Builds deduplicated moves, abilities, types and stats tables
  5. Backs up previous files and replaces them with new ones

Nothing is written if any step before persistence fails.

Examples:
  dexnorm normalize
  dexnorm normalize -a ./app/src/main/assets -j 8
  dexnorm normalize --priority scarlet-violet,sword-shield
  dexnorm normalize --no-entities`,
		Aliases: []string{"clean"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runNormalize(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	normalizeCmd.Flags().StringP("output", "o", "",
		"normalized collection file name")
	normalizeCmd.Flags().Bool("no-entities", false,
		"skip entity tables")

	return normalizeCmd
}

func runNormalize(cmd *cobra.Command) error {
	applyFlags(cmd, creaturesFileFlag, noEntitiesFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gn.Info("Normalizing <em>%s</em>", cfg.RawPath())
	_, err := iopipeline.New(cfg).Run(ctx)
	return err
}
