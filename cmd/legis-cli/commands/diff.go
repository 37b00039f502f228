package commands

import (
	"errors"
	"fmt"

	"mainelegis/lib/serviceutil"
	"mainelegis/services/roster"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var diffFrom *int64
var diffTo *int64

func init() {
	diffFrom = diffCmd.Flags().Int64("from", 0, "The older run to compare. Defaults to the second-latest run.")
	diffTo = diffCmd.Flags().Int64("to", 0, "The newer run to compare. Defaults to the latest run.")
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff [--from <id>] [--to <id>]",
	Short: "Compares the rosters recorded by two runs, the latest two by default.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := openService()
		defer database.Close()

		from, to := *diffFrom, *diffTo
		if from == 0 || to == 0 {
			runs, err := service.Runs(cmd.Context())
			if err != nil {
				serviceutil.Fatal("failed to list runs", err)
			}
			if len(runs) < 2 {
				serviceutil.Fatal("cannot pick default runs", errors.New("need at least two recorded runs to diff"))
			}
			if to == 0 {
				to = runs[0].ID
			}
			if from == 0 {
				from = runs[1].ID
			}
		}

		previous, err := service.RunLegislators(cmd.Context(), from)
		if err != nil {
			serviceutil.Fatal("failed to read run legislators", err)
		}
		next, err := service.RunLegislators(cmd.Context(), to)
		if err != nil {
			serviceutil.Fatal("failed to read run legislators", err)
		}

		diff := roster.DiffRosters(previous, next)
		if diff.Empty() {
			fmt.Println("no changes")
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"Change", "Town", "Previous", "Next"})
		for _, leg := range diff.Added {
			t.AppendRow(table.Row{"Added", leg.Town, "", leg.Member})
		}
		for _, leg := range diff.Removed {
			t.AppendRow(table.Row{"Removed", leg.Town, leg.Member, ""})
		}
		for _, change := range diff.Changed {
			t.AppendRow(table.Row{
				change.Kind.String(),
				change.Town,
				change.Previous.Member,
				change.Next.Member,
			})
		}
		t.Render()
	},
}
