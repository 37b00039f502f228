package roster

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mainelegis/lib/scrapers/mainehouse"
	"mainelegis/lib/testutil"
	"mainelegis/services/roster/db"

	"github.com/stretchr/testify/require"
)

func newStubSite(t testing.TB) *mainehouse.Client {
	mux := http.NewServeMux()
	mux.HandleFunc(mainehouse.DefaultListPath, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("selectedLetter") == "" {
			fmt.Fprint(w, `<ul class="pagination"><li><a href="?selectedLetter=R">R</a></li></ul>`)
			return
		}
		fmt.Fprint(w, `
        <table class="short-table white">
            <tr><th>Header 1</th></tr>
            <tr><th>Header 2</th></tr>
            <tr>
                <td class="short-tabletdlf"><b>Randolph</b> - District 53 - Michael H. Lemelin (R - Chelsea)</td>
                <td><a href="/house/house/MemberProfiles/Details/1428" class="btn btn-default">View</a></td>
            </tr>
        </table>
        `)
	})
	mux.HandleFunc("/house/house/MemberProfiles/Details/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `
        <div id="main-info">
        <p>
            <a href="mailto:Michael.Lemelin@legislature.maine.gov">Michael.Lemelin@legislature.maine.gov</a>
            <br>
            <span class="font_weight_m">Contact:</span>
            <span class="text_right">(207) 582-1707</span>
            <br>
            <span class="font_weight_m">Committee(s):</span>
            <span class="text_right">
                <br>
                <span>Judiciary</span>
                <br>
            </span>
        </p>
        </div>
        `)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := mainehouse.NewClient(mainehouse.ClientOptions{
		BaseUrl:       server.URL,
		RatePerSecond: 1000,
		RateBurst:     1000,
	})
	require.NoError(t, err)
	return client
}

func TestScrape(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/roster",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)
	client := newStubSite(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	csvPath := filepath.Join(t.TempDir(), "district_data.csv")

	var firstRun int64
	{
		id, err := Scrape(ctx, client, service, ScrapeOptions{CsvPath: csvPath})
		require.NoError(t, err)
		firstRun = id

		run, err := service.LatestRun(ctx)
		require.NoError(t, err)
		require.Equal(t, firstRun, run.ID)
		require.Equal(t, 1, run.MemberCount)

		artifact, err := os.ReadFile(csvPath)
		require.NoError(t, err)
		require.Equal(t,
			"District,Town,Member,Party,Email,Phone,Committees\n"+
				"53,Randolph,Michael H. Lemelin,R - Chelsea,Michael.Lemelin@legislature.maine.gov,(207) 582-1707,Judiciary\n",
			string(artifact),
		)
	}
	{
		id, err := Scrape(ctx, client, service, ScrapeOptions{CsvPath: csvPath})
		require.NoError(t, err)
		require.Greater(t, id, firstRun)

		runs, err := service.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 2)
	}
}
