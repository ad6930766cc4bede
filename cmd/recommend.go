package cmd

import (
	"context"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/ixsel/ixsel/internal/iosolver"
	"github.com/ixsel/ixsel/internal/ioworkload"
	"github.com/ixsel/ixsel/pkg/optimizer"
	"github.com/ixsel/ixsel/pkg/workload"
	"github.com/spf13/cobra"
)

// getRecommendCmd returns the recommend command.
func getRecommendCmd() *cobra.Command {
	recommendCmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend indexes for a workload of scans",
		Long: `Recommend which indexes to select for a workload.

The workload file lists scans with their sequential read costs and the
cheaper costs that existing or possible indexes would provide. The
optimization minimizes the configured goals in priority order; each
achieved goal value, relaxed by its tolerance, becomes a hard bound
for the goals after it.

An optional settings file overrides the default goals (minimize total
cost, then the number of new indexes), adds selection rules, and sets
the solver time limit.

Examples:
  # Recommend with the default goals
  ixsel recommend -d workload.json

  # Custom goals and rules, report written to a file
  ixsel recommend -d workload.json -s settings.json -o report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, args)
		},
	}

	recommendCmd.Flags().StringP("data", "d", "",
		"path to the workload JSON file (required)")
	recommendCmd.Flags().StringP("settings", "s", "",
		"path to the settings JSON file")
	recommendCmd.Flags().StringP("output", "o", "",
		"path of the report file; omit for stdout")
	_ = recommendCmd.MarkFlagRequired("data")

	return recommendCmd
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	dataPath, _ := cmd.Flags().GetString("data")
	settingsPath, _ := cmd.Flags().GetString("settings")
	outputPath, _ := cmd.Flags().GetString("output")

	data, err := os.ReadFile(dataPath)
	if err != nil {
		err = ioworkload.ReadFileError(dataPath, err)
		gn.PrintErrorMessage(err)
		return err
	}

	var settings []byte
	if settingsPath != "" {
		settings, err = os.ReadFile(settingsPath)
		if err != nil {
			err = ioworkload.ReadFileError(settingsPath, err)
			gn.PrintErrorMessage(err)
			return err
		}
	}

	p, st, err := ioworkload.NewProblem(data, settings)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	pl, err := optimizer.Build(p)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Optimizing <em>%s</em> scans over <em>%s</em> indexes",
		humanize.Comma(int64(len(p.Scans))),
		humanize.Comma(int64(len(p.Indexes))),
	)

	budgetSec := cfg.Solver.TimeLimitSec
	if st.TimeLimitSec != nil {
		budgetSec = *st.TimeLimitSec
	}
	budget := time.Duration(budgetSec * float64(time.Second))

	adapter := iosolver.New(cfg.Solver.Multiplier)
	opt := optimizer.New(adapter, budget)

	res, err := opt.Optimize(ctx, pl)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	rep := optimizer.Extract(p, res)
	if err = ioworkload.WriteReport(outputPath, rep); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	_, possible := p.CountIndexes()
	gn.Info(
		"Selected <em>%s</em> of <em>%s</em> possible indexes, "+
			"total workload cost <em>%s</em>",
		humanize.Comma(int64(
			optimizer.CountSelected(p, res.Selected, workload.Possible))),
		humanize.Comma(int64(possible)),
		humanize.Commaf(rep.Statistics.Cost.Total),
	)

	return nil
}
