package db

import (
	"context"
)

const createScrapeRun = `
INSERT INTO scrape_runs (started_at, finished_at, member_count)
VALUES (?, ?, ?)
RETURNING id
`

type CreateScrapeRunParams struct {
	StartedAt   int64
	FinishedAt  int64
	MemberCount int64
}

func (q *Queries) CreateScrapeRun(ctx context.Context, arg CreateScrapeRunParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createScrapeRun, arg.StartedAt, arg.FinishedAt, arg.MemberCount)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createLegislator = `
INSERT INTO legislators (run_id, position, district, town, member, party, email, phone, committees)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateLegislatorParams struct {
	RunID      int64
	Position   int64
	District   string
	Town       string
	Member     string
	Party      string
	Email      string
	Phone      string
	Committees string
}

func (q *Queries) CreateLegislator(ctx context.Context, arg CreateLegislatorParams) error {
	_, err := q.db.ExecContext(ctx, createLegislator,
		arg.RunID,
		arg.Position,
		arg.District,
		arg.Town,
		arg.Member,
		arg.Party,
		arg.Email,
		arg.Phone,
		arg.Committees,
	)
	return err
}

const getScrapeRun = `
SELECT id, started_at, finished_at, member_count FROM scrape_runs
WHERE id = ?
`

func (q *Queries) GetScrapeRun(ctx context.Context, id int64) (ScrapeRun, error) {
	row := q.db.QueryRowContext(ctx, getScrapeRun, id)
	var i ScrapeRun
	err := row.Scan(&i.ID, &i.StartedAt, &i.FinishedAt, &i.MemberCount)
	return i, err
}

const getLatestScrapeRun = `
SELECT id, started_at, finished_at, member_count FROM scrape_runs
ORDER BY id DESC
LIMIT 1
`

func (q *Queries) GetLatestScrapeRun(ctx context.Context) (ScrapeRun, error) {
	row := q.db.QueryRowContext(ctx, getLatestScrapeRun)
	var i ScrapeRun
	err := row.Scan(&i.ID, &i.StartedAt, &i.FinishedAt, &i.MemberCount)
	return i, err
}

const listScrapeRuns = `
SELECT id, started_at, finished_at, member_count FROM scrape_runs
ORDER BY id DESC
`

func (q *Queries) ListScrapeRuns(ctx context.Context) ([]ScrapeRun, error) {
	rows, err := q.db.QueryContext(ctx, listScrapeRuns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ScrapeRun
	for rows.Next() {
		var i ScrapeRun
		err := rows.Scan(&i.ID, &i.StartedAt, &i.FinishedAt, &i.MemberCount)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getRunLegislators = `
SELECT run_id, position, district, town, member, party, email, phone, committees
FROM legislators
WHERE run_id = ?
ORDER BY position
`

func (q *Queries) GetRunLegislators(ctx context.Context, runID int64) ([]Legislator, error) {
	rows, err := q.db.QueryContext(ctx, getRunLegislators, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Legislator
	for rows.Next() {
		var i Legislator
		err := rows.Scan(
			&i.RunID,
			&i.Position,
			&i.District,
			&i.Town,
			&i.Member,
			&i.Party,
			&i.Email,
			&i.Phone,
			&i.Committees,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteScrapeRun = `
DELETE FROM scrape_runs WHERE id = ?
`

func (q *Queries) DeleteScrapeRun(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteScrapeRun, id)
	return err
}

const deleteRunLegislators = `
DELETE FROM legislators WHERE run_id = ?
`

func (q *Queries) DeleteRunLegislators(ctx context.Context, runID int64) error {
	_, err := q.db.ExecContext(ctx, deleteRunLegislators, runID)
	return err
}
