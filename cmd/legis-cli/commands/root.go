package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"mainelegis/lib/serviceutil"
	"mainelegis/lib/sqliteutil"
	"mainelegis/services/roster"
	rosterdb "mainelegis/services/roster/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var dbPath *string

var rootCmd = &cobra.Command{
	Use:   "legis-cli",
	Short: "legis-cli scrapes and inspects the Maine house roster.",
}

func init() {
	dbPath = rootCmd.PersistentFlags().String("db", "roster.db", "The database holding recorded scrape runs.")
}

func openService() (roster.Service, *sql.DB) {
	database, err := sqliteutil.OpenDB(rosterdb.Schema, *dbPath)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	return roster.NewService(database), database
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
