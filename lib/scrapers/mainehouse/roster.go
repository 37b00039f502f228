package mainehouse

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"

	"mainelegis/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Letters returns the pagination letters of the roster list page.
// Letters without their own page (no anchor) are not included.
func (c *Client) Letters(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Letters")
	defer span.End()

	res, err := c.get(ctx, c.ListPath, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch roster list")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	var letters []string
	doc.Find("ul.pagination a").Each(func(_ int, sel *goquery.Selection) {
		letter := htmlutil.CompactText(sel.Text())
		if letter != "" {
			letters = append(letters, letter)
		}
	})

	span.SetAttributes(attribute.StringSlice("letters", letters))
	return letters, nil
}

// RosterPage fetches and parses one letter's page of the roster table.
// Rows whose heading cannot be parsed are skipped.
func (c *Client) RosterPage(ctx context.Context, letter string) ([]Row, error) {
	ctx, span := tracer.Start(ctx, "RosterPage")
	defer span.End()
	span.SetAttributes(attribute.String("letter", letter))

	query := url.Values{}
	query.Set("selectedLetter", letter)

	res, err := c.get(ctx, c.ListPath, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch roster page")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	return parseRosterTable(ctx, doc), nil
}

func parseRosterTable(ctx context.Context, doc *goquery.Document) []Row {
	table := doc.Find("table.short-table.white").First()
	if table.Length() == 0 {
		slog.WarnContext(ctx, "roster table not found")
		return nil
	}

	trs := table.Find("tr")
	if trs.Length() <= 2 {
		return nil
	}

	var rows []Row
	// the first two rows are the letter banner and the column headers
	trs.Slice(2, goquery.ToEnd).Each(func(_ int, tr *goquery.Selection) {
		cell := tr.Find("td.short-tabletdlf").First()
		if cell.Length() == 0 {
			return
		}

		heading := cell.Text()
		district, town, member, party, ok := ExtractLegislator(heading)
		if !ok {
			slog.WarnContext(ctx, "could not extract district data from roster row",
				"heading", htmlutil.CompactText(heading),
			)
			return
		}

		href := tr.Find("a.btn.btn-default").First().AttrOr("href", "")
		rows = append(rows, Row{
			District:    district,
			Town:        town,
			Member:      member,
			Party:       party,
			ProfileHref: href,
		})
	})

	return rows
}
