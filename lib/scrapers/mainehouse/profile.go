package mainehouse

import (
	"bytes"
	"context"
	"log/slog"

	"mainelegis/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Profile fetches a member profile page and extracts the contact details
// from its main info block. A page without the block yields an empty
// Profile, not an error.
func (c *Client) Profile(ctx context.Context, href string) (Profile, error) {
	ctx, span := tracer.Start(ctx, "Profile")
	defer span.End()
	span.SetAttributes(attribute.String("href", href))

	res, err := c.get(ctx, href, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch member profile")
		return Profile{}, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return Profile{}, err
	}

	return parseProfile(ctx, doc), nil
}

func parseProfile(ctx context.Context, doc *goquery.Document) Profile {
	mainInfo := doc.Find("div#main-info").First()
	if mainInfo.Length() == 0 {
		slog.WarnContext(ctx, "profile page has no main info block")
		return Profile{}
	}

	infoParagraph := mainInfo.Find("p").First()
	if infoParagraph.Length() == 0 {
		slog.WarnContext(ctx, "profile main info block has no info paragraph")
		return Profile{}
	}

	profile := Profile{
		Committees: parseCommittees(mainInfo),
	}

	emailTag := infoParagraph.Find("a[href]").First()
	if emailTag.Length() == 0 {
		slog.WarnContext(ctx, "email not found on profile page")
	} else {
		profile.Email = htmlutil.CompactText(emailTag.Text())
	}

	profile.Phone = parseLabeledValue(infoParagraph, "Contact:")
	if profile.Phone == "" {
		slog.WarnContext(ctx, "phone not found on profile page")
	}

	return profile
}

// parseLabeledValue finds a `span.font_weight_m` label with the given
// text and returns the compacted text of the `span.text_right` that
// follows it.
func parseLabeledValue(scope *goquery.Selection, label string) string {
	var value string
	scope.Find("span.font_weight_m").Each(func(_ int, sel *goquery.Selection) {
		if value != "" || htmlutil.CompactText(sel.Text()) != label {
			return
		}
		value = htmlutil.CompactText(sel.NextAllFiltered("span.text_right").First().Text())
	})
	return value
}

// parseCommittees collects the committee assignments listed after the
// "Committee(s):" label. The assignments live as inner spans of the
// `span.text_right` container that follows the label.
func parseCommittees(scope *goquery.Selection) []string {
	var committees []string
	scope.Find("span.font_weight_m").Each(func(_ int, sel *goquery.Selection) {
		if htmlutil.CompactText(sel.Text()) != "Committee(s):" {
			return
		}
		container := sel.NextAllFiltered("span.text_right").First()
		container.Find("span").Each(func(_ int, committee *goquery.Selection) {
			name := htmlutil.CompactText(committee.Text())
			if name != "" {
				committees = append(committees, name)
			}
		})
	})
	return committees
}
