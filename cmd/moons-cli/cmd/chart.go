package cmd

import (
	"fmt"
	"os"

	"moonanalysis-backend/lib/chartutil"
	"moonanalysis-backend/lib/util/serviceutil"
	"moonanalysis-backend/services/moons"

	"github.com/spf13/cobra"
)

var chartOutput string

func init() {
	chartCmd.Flags().StringVarP(
		&chartOutput, "output", "o", "chart.html", "path of the rendered chart",
	)
	rootCmd.AddCommand(chartCmd)
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Renders the per-bin discovery counts as a horizontal bar chart.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, db := openService()
		defer db.Close()

		bins, err := svc.Summary(cmd.Context(), moons.SummaryFilter{})
		if err != nil {
			serviceutil.Fatal("failed to summarize the moon table", err)
		}

		bars := make([]chartutil.Bar, len(bins))
		for i, b := range bins {
			bars[i] = chartutil.Bar{Label: b.Bin, Value: b.Count}
		}

		f, err := os.Create(chartOutput)
		if err != nil {
			serviceutil.Fatal("failed to create the output file", err)
		}
		defer f.Close()

		err = chartutil.RenderBars(
			"Count of discovered moons for each year bin",
			"Number of discovered moons",
			bars, f,
		)
		if err != nil {
			serviceutil.Fatal("failed to render the chart", err)
		}
		fmt.Printf("wrote %s\n", chartOutput)
	},
}
