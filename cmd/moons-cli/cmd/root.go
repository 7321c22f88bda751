package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"moonanalysis-backend/lib/configutil"
	configsqlite "moonanalysis-backend/lib/configutil/sqlite"
	"moonanalysis-backend/lib/moontable"
	"moonanalysis-backend/lib/scrapers/natsat"
	"moonanalysis-backend/lib/telemetry"
	"moonanalysis-backend/lib/util/serviceutil"
	"moonanalysis-backend/services/moons"
	moonsdb "moonanalysis-backend/services/moons/db"

	"github.com/spf13/cobra"
)

type Config struct {
	Source   natsat.Config      `json:"source"`
	Database configsqlite.Struct `json:"database"`
	Pipeline moontable.Config   `json:"pipeline"`
}

var configFile string

var shutdownTelemetry func(context.Context) error

var rootCmd = &cobra.Command{
	Use:   "moons-cli",
	Short: "moons-cli scrapes, cleans and summarizes the table of natural satellites.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		t, err := telemetry.SetupFromEnv(cmd.Context(), "moons-cli")
		if err != nil {
			// running without a collector is fine
			if !os.IsNotExist(err) {
				serviceutil.Fatal("failed to setup telemetry", err)
			}
			return
		}
		shutdownTelemetry = t.Shutdown
		telemetry.InstrumentPerfStats(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if shutdownTelemetry != nil {
			shutdownTelemetry(context.Background())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configFile, "config", "config.json5", "path to the configuration file",
	)
}

func readConfig() Config {
	config, err := configutil.ReadConfig[Config](configFile)
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.Database.File == "" && config.Database.Url == "" {
		config.Database.File = "moons.db"
	}
	if config.Pipeline.Bins == (moontable.BinConfig{}) {
		config.Pipeline.Bins = moontable.DefaultBins()
	}
	return config
}

func openService() (moons.Service, *sql.DB) {
	config := readConfig()

	db, err := config.Database.OpenDB(moonsdb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}

	scraper := natsat.NewClient(config.Source)
	return moons.NewService(scraper, db, config.Pipeline), db
}

func Execute() {
	ctx := serviceutil.SignalContext()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
