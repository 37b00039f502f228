package mainehouse

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"net/url"
	"time"

	"mainelegis/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("scrapers/mainehouse")

const (
	DefaultBaseUrl  = "https://legislature.maine.gov"
	DefaultListPath = "/house/house/MemberProfiles/ListAlphaTown"

	// the site tolerates roughly 5 requests per 3 seconds before it
	// starts serving errors, so stay inside that budget
	defaultRatePerSecond = 5.0 / 3.0
	defaultRateBurst     = 5

	defaultConcurrency = 4
)

type Client struct {
	BaseUrl  *url.URL
	ListPath string
	Http     *resty.Client

	limiter     *rate.Limiter
	concurrency int
}

type ClientOptions struct {
	// BaseUrl defaults to the Maine legislature site.
	BaseUrl string
	// ListPath defaults to the alphabetical-by-town house roster.
	ListPath string
	// RatePerSecond/RateBurst bound outgoing requests. Zero values pick
	// the site's politeness budget.
	RatePerSecond float64
	RateBurst     int
	// Concurrency bounds parallel roster page scrapes.
	Concurrency int
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.ListPath == "" {
		opts.ListPath = DefaultListPath
	}
	if opts.RatePerSecond == 0 {
		opts.RatePerSecond = defaultRatePerSecond
	}
	if opts.RateBurst == 0 {
		opts.RateBurst = defaultRateBurst
	}
	if opts.Concurrency == 0 {
		opts.Concurrency = defaultConcurrency
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, "scrapers/mainehouse/http", instrumentOutput)

	c := &Client{
		BaseUrl:     baseUrl,
		ListPath:    opts.ListPath,
		Http:        client,
		limiter:     rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.RateBurst),
		concurrency: opts.Concurrency,
	}
	return c, nil
}

var instrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput redirects full HTTP transcripts to `output`
// for clients created afterwards.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	instrumentOutput = output
}

// get fetches a path after waiting out the rate limiter.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*resty.Response, error) {
	err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, err
	}

	req := c.Http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	res, err := req.Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("GET %s: status %d", path, res.StatusCode())
	}
	return res, nil
}

// ScrapeRoster walks the full roster: every pagination letter, every
// table row, every member profile. Results keep the site's order
// (letter order, then table order). A letter page failure fails the
// scrape, a profile failure only degrades that row to blank contact
// fields.
func (c *Client) ScrapeRoster(ctx context.Context) ([]Legislator, error) {
	ctx, span := tracer.Start(ctx, "ScrapeRoster")
	defer span.End()

	letters, err := c.Letters(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pagination: %w", err)
	}
	if len(letters) == 0 {
		return nil, fmt.Errorf("roster pagination is empty")
	}
	slog.InfoContext(ctx, "scraping roster", "letters", len(letters))

	pages := make([][]Legislator, len(letters))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(c.concurrency)
	for i, letter := range letters {
		i, letter := i, letter
		group.Go(func() error {
			page, err := c.scrapeLetter(gctx, letter)
			if err != nil {
				return fmt.Errorf("letter %q: %w", letter, err)
			}
			pages[i] = page
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return nil, err
	}

	var roster []Legislator
	for _, page := range pages {
		roster = append(roster, page...)
	}
	return roster, nil
}

func (c *Client) scrapeLetter(ctx context.Context, letter string) ([]Legislator, error) {
	rows, err := c.RosterPage(ctx, letter)
	if err != nil {
		return nil, err
	}

	page := make([]Legislator, 0, len(rows))
	for _, row := range rows {
		leg := Legislator{
			District: row.District,
			Town:     row.Town,
			Member:   row.Member,
			Party:    row.Party,
		}

		if row.ProfileHref == "" {
			slog.WarnContext(ctx, "roster row has no profile link", "member", row.Member, "town", row.Town)
		} else {
			profile, err := c.Profile(ctx, row.ProfileHref)
			if err != nil {
				slog.WarnContext(ctx, "failed to scrape member profile",
					"member", row.Member,
					"href", row.ProfileHref,
					"err", err,
				)
			} else {
				leg.Email = profile.Email
				leg.Phone = profile.Phone
				leg.Committees = profile.Committees
			}
		}

		page = append(page, leg)
	}
	return page, nil
}
