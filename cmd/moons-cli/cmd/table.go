package cmd

import (
	"strconv"

	"moonanalysis-backend/cmd/moons-cli/utils"
	"moonanalysis-backend/lib/moontable"
	"moonanalysis-backend/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tableCmd)
}

func formatRank(r moontable.Record) string {
	if !r.DistanceRank.Valid {
		return ""
	}
	return strconv.FormatInt(r.DistanceRank.Int64, 10)
}

func formatPeriod(r moontable.Record) string {
	if !r.PeriodYears.Valid {
		return ""
	}
	return strconv.FormatFloat(r.PeriodYears.Float64, 'g', -1, 64)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Prints the stored analysis-ready table.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, db := openService()
		defer db.Close()

		rows, err := svc.Table(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to read the moon table", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{
			"Numeral", "Name", "Discovery year", "Year bin", "Discovered by",
			"Mean radius (km)", "Notes", "Parent Planet",
			"Mean distance rank", "Orbital period(yrs)",
		})
		for _, r := range rows {
			t.AppendRow(table.Row{
				r.Numeral, r.Name, r.DiscoveryYear, r.YearBin, r.DiscoveredBy,
				r.MeanRadius, r.Notes, r.ParentPlanet,
				formatRank(r), formatPeriod(r),
			})
		}
		t.Render()
	},
}
