package cmd

import (
	"fmt"
	"log/slog"

	"moonanalysis-backend/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Scrapes the source page, cleans the table and stores the result.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, db := openService()
		defer db.Close()

		result, err := svc.Refresh(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to refresh the moon table", err)
		}

		for _, r := range result.Rejected {
			slog.Warn(
				"dropped row",
				"key", r.Key.String(),
				"value", r.Value,
				"reason", r.Reason,
			)
		}
		fmt.Printf(
			"fetched %d rows, stored %d, dropped %d\n",
			result.Fetched, result.Kept, len(result.Rejected),
		)
	},
}
