package commands

import (
	"database/sql"
	"errors"
	"log/slog"

	"mainelegis/lib/serviceutil"
	"mainelegis/services/roster"

	"github.com/spf13/cobra"
)

var exportCsv *string
var exportRun *int64

func init() {
	exportCsv = exportCmd.Flags().String("csv", "district_data.csv", "The file to export the roster to.")
	exportRun = exportCmd.Flags().Int64("run", 0, "The run to export. Defaults to the latest run.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [--run <id>] [--csv <path/to/output.csv>]",
	Short: "Exports a recorded run to a CSV file.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := openService()
		defer database.Close()

		runID := *exportRun
		if runID == 0 {
			run, err := service.LatestRun(cmd.Context())
			if errors.Is(err, sql.ErrNoRows) {
				serviceutil.Fatal("no runs recorded yet", err)
			}
			if err != nil {
				serviceutil.Fatal("failed to read latest run", err)
			}
			runID = run.ID
		}

		legislators, err := service.RunLegislators(cmd.Context(), runID)
		if err != nil {
			serviceutil.Fatal("failed to read run legislators", err)
		}

		err = roster.ExportCSV(*exportCsv, legislators)
		if err != nil {
			serviceutil.Fatal("failed to export csv", err)
		}

		slog.Info("exported roster", "run", runID, "members", len(legislators), "path", *exportCsv)
	},
}
