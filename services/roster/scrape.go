package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mainelegis/lib/scrapers/mainehouse"
)

type ScrapeOptions struct {
	// CsvPath, when set, receives the exported roster after the run is
	// recorded.
	CsvPath string
	// Notifier, when set, is told about a non-empty diff against the
	// previous run.
	Notifier *Notifier
}

// Scrape performs one full roster refresh: scrape the site, record the
// run, export the CSV artifact and report changes. The run stays
// recorded even when the export or notification fails afterwards.
func Scrape(ctx context.Context, client *mainehouse.Client, service Service, opts ScrapeOptions) (int64, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	startedAt := time.Now()
	legislators, err := client.ScrapeRoster(ctx)
	if err != nil {
		return 0, fmt.Errorf("scrape roster: %w", err)
	}
	finishedAt := time.Now()

	slog.InfoContext(ctx, "roster scraped",
		"members", len(legislators),
		"seconds", finishedAt.Sub(startedAt).Seconds(),
	)

	var previous []mainehouse.Legislator
	lastRun, err := service.LatestRun(ctx)
	if err == nil {
		previous, err = service.RunLegislators(ctx, lastRun.ID)
		if err != nil {
			return 0, fmt.Errorf("load previous run: %w", err)
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("load latest run: %w", err)
	}

	runID, err := service.RecordRun(ctx, startedAt, finishedAt, legislators)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}

	var errlist []error
	if opts.CsvPath != "" {
		err := ExportCSV(opts.CsvPath, legislators)
		if err != nil {
			slog.ErrorContext(ctx, "failed to export csv", "path", opts.CsvPath, "err", err)
			errlist = append(errlist, fmt.Errorf("export csv: %w", err))
		} else {
			slog.InfoContext(ctx, "csv exported", "path", opts.CsvPath)
		}
	}

	if previous == nil {
		slog.InfoContext(ctx, "first recorded run, skipping diff")
		return runID, errors.Join(errlist...)
	}

	diff := DiffRosters(previous, legislators)
	if diff.Empty() {
		slog.InfoContext(ctx, "no roster changes since previous run")
	} else {
		slog.InfoContext(ctx, "roster changed",
			"added", len(diff.Added),
			"removed", len(diff.Removed),
			"changed", len(diff.Changed),
		)
		if opts.Notifier != nil {
			err := opts.Notifier.RosterChanged(ctx, diff, runID)
			if err != nil {
				slog.ErrorContext(ctx, "failed to send change notification", "err", err)
				errlist = append(errlist, fmt.Errorf("notify: %w", err))
			}
		}
	}

	return runID, errors.Join(errlist...)
}
