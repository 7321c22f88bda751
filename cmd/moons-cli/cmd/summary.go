package cmd

import (
	"fmt"

	"moonanalysis-backend/cmd/moons-cli/utils"
	"moonanalysis-backend/lib/util/serviceutil"
	"moonanalysis-backend/services/moons"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	maxPeriod     float64
	maxRank       int64
	showFractions bool
)

func init() {
	summaryCmd.Flags().Float64Var(
		&maxPeriod, "max-period", 0,
		"only count moons with an orbital period below this many years (0 disables)",
	)
	summaryCmd.Flags().Int64Var(
		&maxRank, "max-rank", 0,
		"only count moons with a mean distance rank below this (0 disables)",
	)
	summaryCmd.Flags().BoolVar(
		&showFractions, "fractions", false,
		"print the share of counted moons instead of absolute counts",
	)
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Counts stored moons per discovery-year bin, most populous first.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, db := openService()
		defer db.Close()

		bins, err := svc.Summary(cmd.Context(), moons.SummaryFilter{
			MaxPeriodYears:  maxPeriod,
			MaxDistanceRank: maxRank,
		})
		if err != nil {
			serviceutil.Fatal("failed to summarize the moon table", err)
		}

		t := utils.NewTable()
		if showFractions {
			t.AppendHeader(table.Row{"Year bin", "Fraction"})
			for _, b := range bins {
				t.AppendRow(table.Row{b.Bin, fmt.Sprintf("%.4f", b.Fraction)})
			}
		} else {
			t.AppendHeader(table.Row{"Year bin", "Count"})
			for _, b := range bins {
				t.AppendRow(table.Row{b.Bin, b.Count})
			}
		}
		t.Render()
	},
}
