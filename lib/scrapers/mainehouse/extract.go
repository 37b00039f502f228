package mainehouse

import (
	"regexp"
	"strings"
)

var (
	lineBreaks     = regexp.MustCompile(`[\r\n]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)

	// "<town> - District <n> - <member> (<party>)" where the town may
	// itself contain hyphens, parentheses, or prefixes like "plantation"
	// or "unorganized territory of".
	headingRegex = regexp.MustCompile(`^(.+?)\s*-\s*District\s+(\d+)\s*-\s*(.+?)\s*\((.+)\)`)
)

// ExtractLegislator parses a roster table heading such as
//
//	"Old Orchard Beach - District 131 - Lori K. Gramlich (D - Old Orchard Beach)"
//
// into its district, town, member and party parts. ok is false when the
// text does not carry district data.
func ExtractLegislator(text string) (district, town, member, party string, ok bool) {
	if !strings.Contains(text, "District") {
		return "", "", "", "", false
	}

	formatted := lineBreaks.ReplaceAllString(text, " ")
	formatted = whitespaceRuns.ReplaceAllString(formatted, " ")

	match := headingRegex.FindStringSubmatch(formatted)
	if match == nil {
		return "", "", "", "", false
	}

	town = strings.TrimSpace(match[1])
	district = strings.TrimSpace(match[2])
	member = strings.TrimSpace(match[3])
	party = strings.TrimSpace(match[4])
	return district, town, member, party, true
}
