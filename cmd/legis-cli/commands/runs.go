package commands

import (
	"time"

	"mainelegis/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runsCmd)
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Lists recorded scrape runs, newest first.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := openService()
		defer database.Close()

		runs, err := service.Runs(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list runs", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Run", "Started", "Duration", "Members"})
		for _, run := range runs {
			t.AppendRow(table.Row{
				run.ID,
				run.StartedAt.Format(time.ANSIC),
				run.FinishedAt.Sub(run.StartedAt).Round(time.Second),
				run.MemberCount,
			})
		}
		t.Render()
	},
}
