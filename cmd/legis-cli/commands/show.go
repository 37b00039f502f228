package commands

import (
	"database/sql"
	"errors"

	"mainelegis/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showRun *int64

func init() {
	showRun = showCmd.Flags().Int64("run", 0, "The run to show. Defaults to the latest run.")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [--run <id>]",
	Short: "Shows the legislators recorded by a run.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := openService()
		defer database.Close()

		runID := *showRun
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

		t := newTable()
		t.AppendHeader(table.Row{"District", "Town", "Member", "Party", "Email", "Phone", "Committees"})
		for _, leg := range legislators {
			t.AppendRow(table.Row{
				leg.District,
				leg.Town,
				leg.Member,
				leg.Party,
				leg.Email,
				leg.Phone,
				leg.CommitteeList(),
			})
		}
		t.Render()
	},
}
