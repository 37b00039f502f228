package db

type ScrapeRun struct {
	ID          int64
	StartedAt   int64
	FinishedAt  int64
	MemberCount int64
}

type Legislator struct {
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
