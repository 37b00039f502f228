package roster

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"mainelegis/lib/scrapers/mainehouse"
	"mainelegis/lib/testutil"
	"mainelegis/services/roster/db"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/roster",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	roster := []mainehouse.Legislator{
		{
			District:   "53",
			Town:       "Randolph",
			Member:     "Michael H. Lemelin",
			Party:      "R - Chelsea",
			Email:      "Michael.Lemelin@legislature.maine.gov",
			Phone:      "(207) 582-1707",
			Committees: []string{"Agriculture, Conservation and Forestry", "Marine Resources"},
		},
		{
			District: "86",
			Town:     "Raymond",
			Member:   "Rolf A. Olsen",
			Party:    "R - Raymond",
		},
	}

	{
		_, err := service.LatestRun(ctx)
		require.True(t, errors.Is(err, sql.ErrNoRows))
	}

	started := time.Now().Add(-time.Minute).Truncate(time.Second)
	finished := time.Now().Truncate(time.Second)

	var firstRun int64
	{
		id, err := service.RecordRun(ctx, started, finished, roster)
		require.NoError(t, err)
		firstRun = id
	}
	{
		run, err := service.LatestRun(ctx)
		require.NoError(t, err)
		require.Equal(t, firstRun, run.ID)
		require.Equal(t, started.Unix(), run.StartedAt.Unix())
		require.Equal(t, finished.Unix(), run.FinishedAt.Unix())
		require.Equal(t, 2, run.MemberCount)
	}
	{
		stored, err := service.RunLegislators(ctx, firstRun)
		require.NoError(t, err)
		if d := cmp.Diff(roster, stored); d != "" {
			t.Fatal(d)
		}
	}
	{
		id, err := service.RecordRun(ctx, finished, finished.Add(time.Minute), roster[:1])
		require.NoError(t, err)
		require.Greater(t, id, firstRun)

		runs, err := service.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		// newest first
		require.Equal(t, id, runs[0].ID)
		require.Equal(t, firstRun, runs[1].ID)

		run, err := service.Run(ctx, firstRun)
		require.NoError(t, err)
		require.Equal(t, 2, run.MemberCount)
	}
	{
		err := service.DeleteRun(ctx, firstRun)
		require.NoError(t, err)

		runs, err := service.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)

		stored, err := service.RunLegislators(ctx, firstRun)
		require.NoError(t, err)
		require.Empty(t, stored)
	}
	{
		_, err := service.Run(ctx, 99999)
		require.True(t, errors.Is(err, sql.ErrNoRows))
	}
}
