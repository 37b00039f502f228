package commands

import (
	"log/slog"
	"time"

	"mainelegis/lib/restyutil"
	"mainelegis/lib/scrapers/mainehouse"
	"mainelegis/lib/serviceutil"
	"mainelegis/services/roster"

	"github.com/spf13/cobra"
)

var scrapeCsv *string
var scrapeVerbose *bool

func init() {
	scrapeCsv = scrapeCmd.Flags().String("csv", "district_data.csv", "The file to export the scraped roster to.")
	scrapeVerbose = scrapeCmd.Flags().Bool("verbose", false, "Write http transcripts to .dev/resty.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--csv <path/to/output.csv>]",
	Short: "Scrapes the house roster, records a run and exports the CSV.",
	Run: func(cmd *cobra.Command, args []string) {
		if *scrapeVerbose {
			mainehouse.SetRestyInstrumentOutput(
				restyutil.NewFilesystemOutput(".dev/resty/mainehouse"),
			)
		}

		client, err := mainehouse.NewClient(mainehouse.ClientOptions{})
		if err != nil {
			serviceutil.Fatal("failed to initialize client", err)
		}

		service, database := openService()
		defer database.Close()

		t1 := time.Now()
		runID, err := roster.Scrape(cmd.Context(), client, service, roster.ScrapeOptions{
			CsvPath: *scrapeCsv,
		})
		if err != nil {
			serviceutil.Fatal("scrape failed", err)
		}
		t2 := time.Now()

		slog.Info("scrape complete", "run", runID, "seconds", t2.Sub(t1).Seconds())
	},
}
