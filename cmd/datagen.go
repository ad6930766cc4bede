package cmd

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/ixsel/ixsel/internal/iodatagen"
	"github.com/ixsel/ixsel/internal/ioworkload"
	"github.com/spf13/cobra"
)

// getDatagenCmd returns the datagen command.
func getDatagenCmd() *cobra.Command {
	datagenCmd := &cobra.Command{
		Use:   "datagen",
		Short: "Generate a synthetic workload file",
		Long: `Generate a random workload for experiments and benchmarks.

The generated file has the same JSON shape the recommend command reads:
scans with sequential read costs, plus existing and possible indexes
with write overheads and per-scan coverage costs. Every coverage cost
is strictly below the covered scan's read cost.

The same seed always produces the same workload; without a seed the
current time is used.

Examples:
  # A workload with default ranges
  ixsel datagen -o workload.json

  # A reproducible one
  ixsel datagen -o workload.json --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatagen(cmd, args)
		},
	}

	datagenCmd.Flags().StringP("output", "o", "",
		"path of the workload file (required)")
	datagenCmd.Flags().Int64("seed", 0,
		"random seed; 0 uses the current time")
	datagenCmd.Flags().Int("scans-min", 0, "minimum number of scans")
	datagenCmd.Flags().Int("scans-max", 0, "maximum number of scans")
	datagenCmd.Flags().Int("indexes-min", 0, "minimum number of possible indexes")
	datagenCmd.Flags().Int("indexes-max", 0, "maximum number of possible indexes")
	_ = datagenCmd.MarkFlagRequired("output")

	return datagenCmd
}

func runDatagen(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	outputPath, _ := cmd.Flags().GetString("output")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	o := iodatagen.DefaultOptions()
	o.Seed = seed
	o.Jobs = cfg.JobsNumber
	o.WithProgress = true

	if v, _ := cmd.Flags().GetInt("scans-min"); v > 0 {
		o.ScansMin = v
	}
	if v, _ := cmd.Flags().GetInt("scans-max"); v > 0 {
		o.ScansMax = v
	}
	if v, _ := cmd.Flags().GetInt("indexes-min"); v > 0 {
		o.IndexesMin = v
	}
	if v, _ := cmd.Flags().GetInt("indexes-max"); v > 0 {
		o.IndexesMax = v
	}

	scans, indexes, err := iodatagen.Generate(ctx, o)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioworkload.WriteWorkload(outputPath, scans, indexes); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Wrote <em>%s</em> scans and <em>%s</em> indexes to <em>%s</em> "+
			"(seed <em>%d</em>)",
		humanize.Comma(int64(len(scans))),
		humanize.Comma(int64(len(indexes))),
		outputPath, seed,
	)

	return nil
}
