package mainehouse

import "strings"

// Legislator is one seat of the Maine House of Representatives as listed
// on the alphabetical-by-municipality member roster.
type Legislator struct {
	District   string
	Town       string
	Member     string
	Party      string
	Email      string
	Phone      string
	Committees []string
}

// CommitteeList renders the committee assignments the way the published
// artifact stores them, joined with "; ".
func (l Legislator) CommitteeList() string {
	return strings.Join(l.Committees, "; ")
}

// Row is a single parsed row of the roster table before the member's
// profile page has been fetched.
type Row struct {
	District    string
	Town        string
	Member      string
	Party       string
	ProfileHref string
}

// Profile holds the contact details scraped from a member profile page.
type Profile struct {
	Email      string
	Phone      string
	Committees []string
}
