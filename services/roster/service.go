package roster

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"mainelegis/lib/scrapers/mainehouse"
	"mainelegis/services/roster/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/roster")

// Service stores roster scrape runs and hands back their history.
type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// Run is one recorded scrape of the full roster.
type Run struct {
	ID          int64
	StartedAt   time.Time
	FinishedAt  time.Time
	MemberCount int
}

func runFromRow(row db.ScrapeRun) Run {
	return Run{
		ID:          row.ID,
		StartedAt:   time.Unix(row.StartedAt, 0),
		FinishedAt:  time.Unix(row.FinishedAt, 0),
		MemberCount: int(row.MemberCount),
	}
}

// RecordRun stores a scraped roster as a new run. The roster's order is
// preserved through the stored position column.
func (s Service) RecordRun(ctx context.Context, startedAt, finishedAt time.Time, legislators []mainehouse.Legislator) (int64, error) {
	ctx, span := tracer.Start(ctx, "RecordRun")
	defer span.End()
	span.SetAttributes(attribute.Int("member_count", len(legislators)))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	runID, err := txqry.CreateScrapeRun(ctx, db.CreateScrapeRunParams{
		StartedAt:   startedAt.Unix(),
		FinishedAt:  finishedAt.Unix(),
		MemberCount: int64(len(legislators)),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	for i, leg := range legislators {
		err := txqry.CreateLegislator(ctx, db.CreateLegislatorParams{
			RunID:      runID,
			Position:   int64(i),
			District:   leg.District,
			Town:       leg.Town,
			Member:     leg.Member,
			Party:      leg.Party,
			Email:      leg.Email,
			Phone:      leg.Phone,
			Committees: leg.CommitteeList(),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	return runID, nil
}

// LatestRun returns the most recent run, sql.ErrNoRows when none exist.
func (s Service) LatestRun(ctx context.Context) (Run, error) {
	ctx, span := tracer.Start(ctx, "LatestRun")
	defer span.End()

	row, err := s.qry.GetLatestScrapeRun(ctx)
	if err != nil {
		if err != sql.ErrNoRows {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return Run{}, err
	}
	return runFromRow(row), nil
}

func (s Service) Run(ctx context.Context, id int64) (Run, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()
	span.SetAttributes(attribute.Int64("run_id", id))

	row, err := s.qry.GetScrapeRun(ctx, id)
	if err != nil {
		if err != sql.ErrNoRows {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return Run{}, err
	}
	return runFromRow(row), nil
}

// Runs returns run history, newest first.
func (s Service) Runs(ctx context.Context) ([]Run, error) {
	ctx, span := tracer.Start(ctx, "Runs")
	defer span.End()

	rows, err := s.qry.ListScrapeRuns(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, runFromRow(row))
	}
	return runs, nil
}

// RunLegislators returns the roster of a run in its stored order.
func (s Service) RunLegislators(ctx context.Context, runID int64) ([]mainehouse.Legislator, error) {
	ctx, span := tracer.Start(ctx, "RunLegislators")
	defer span.End()
	span.SetAttributes(attribute.Int64("run_id", runID))

	rows, err := s.qry.GetRunLegislators(ctx, runID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	legislators := make([]mainehouse.Legislator, 0, len(rows))
	for _, row := range rows {
		// stored "; "-joined, see schema.sql
		var committees []string
		if row.Committees != "" {
			committees = strings.Split(row.Committees, "; ")
		}
		legislators = append(legislators, mainehouse.Legislator{
			District:   row.District,
			Town:       row.Town,
			Member:     row.Member,
			Party:      row.Party,
			Email:      row.Email,
			Phone:      row.Phone,
			Committees: committees,
		})
	}
	return legislators, nil
}

// DeleteRun removes a run and its stored roster.
func (s Service) DeleteRun(ctx context.Context, runID int64) error {
	ctx, span := tracer.Start(ctx, "DeleteRun")
	defer span.End()
	span.SetAttributes(attribute.Int64("run_id", runID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteRunLegislators(ctx, runID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	err = txqry.DeleteScrapeRun(ctx, runID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
