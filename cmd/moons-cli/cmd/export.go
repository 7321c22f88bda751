package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"moonanalysis-backend/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(
		&exportOutput, "output", "o", "moons.csv", "path of the exported csv",
	)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the stored analysis-ready table as CSV.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, db := openService()
		defer db.Close()

		rows, err := svc.Table(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to read the moon table", err)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			serviceutil.Fatal("failed to create the output file", err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		w.Write([]string{
			"Numeral", "Name", "Discovery year", "Year bin", "Discovered by",
			"Mean radius (km)", "Notes", "Parent Planet",
			"Mean distance rank", "Orbital period(yrs)",
		})
		for _, r := range rows {
			w.Write([]string{
				r.Numeral, r.Name,
				strconv.FormatInt(r.DiscoveryYear, 10),
				r.YearBin, r.DiscoveredBy, r.MeanRadius, r.Notes,
				r.ParentPlanet, formatRank(r), formatPeriod(r),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			serviceutil.Fatal("failed to write the csv", err)
		}
		fmt.Printf("wrote %d rows to %s\n", len(rows), exportOutput)
	},
}
