package roster

import (
	"slices"

	"mainelegis/lib/scrapers/mainehouse"
	"mainelegis/lib/textutil"

	"github.com/antzucaro/matchr"
)

// two normalized names at or above this similarity are assumed to be
// the same person (typo fix, middle initial added, etc.) rather than a
// seat changing hands
const sameNameSimilarity = 0.85

type ChangeKind int

const (
	// SeatReplaced means the municipality is now represented by a
	// different person.
	SeatReplaced ChangeKind = iota
	// NameCorrected means the member's name changed shape but is very
	// likely still the same person.
	NameCorrected
	// DetailsChanged means the member is unchanged but their party,
	// contact info or committee assignments moved.
	DetailsChanged
)

func (k ChangeKind) String() string {
	switch k {
	case SeatReplaced:
		return "seat replaced"
	case NameCorrected:
		return "name corrected"
	case DetailsChanged:
		return "details changed"
	}
	return "unknown"
}

type Change struct {
	Town     string
	Kind     ChangeKind
	Previous mainehouse.Legislator
	Next     mainehouse.Legislator
}

// RosterDiff describes how one scraped roster moved relative to an
// earlier one, keyed by seat (municipality plus district).
type RosterDiff struct {
	Added   []mainehouse.Legislator
	Removed []mainehouse.Legislator
	Changed []Change
}

func (d RosterDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

func legislatorDetailsEqual(a, b mainehouse.Legislator) bool {
	return a.Party == b.Party &&
		a.Email == b.Email &&
		a.Phone == b.Phone &&
		slices.Equal(a.Committees, b.Committees)
}

// a split municipality like "Auburn (Part)" appears once per district it
// spans, so a row's identity is the town and district together
type seatKey struct {
	town     string
	district string
}

// DiffRosters compares two rosters seat by seat. Member changes are
// classified with Jaro-Winkler similarity: a near-identical name is a
// correction, anything else is the seat changing hands.
func DiffRosters(previous, next []mainehouse.Legislator) RosterDiff {
	prevBySeat := make(map[seatKey]mainehouse.Legislator, len(previous))
	for _, leg := range previous {
		prevBySeat[seatKey{leg.Town, leg.District}] = leg
	}
	nextSeats := make(map[seatKey]bool, len(next))

	var diff RosterDiff
	for _, nextLeg := range next {
		nextSeats[seatKey{nextLeg.Town, nextLeg.District}] = true

		prevLeg, existed := prevBySeat[seatKey{nextLeg.Town, nextLeg.District}]
		if !existed {
			diff.Added = append(diff.Added, nextLeg)
			continue
		}

		prevName := textutil.NormalizeName(prevLeg.Member)
		nextName := textutil.NormalizeName(nextLeg.Member)

		if prevName == nextName {
			if !legislatorDetailsEqual(prevLeg, nextLeg) {
				diff.Changed = append(diff.Changed, Change{
					Town:     nextLeg.Town,
					Kind:     DetailsChanged,
					Previous: prevLeg,
					Next:     nextLeg,
				})
			}
			continue
		}

		kind := SeatReplaced
		if matchr.JaroWinkler(prevName, nextName, false) >= sameNameSimilarity {
			kind = NameCorrected
		}
		diff.Changed = append(diff.Changed, Change{
			Town:     nextLeg.Town,
			Kind:     kind,
			Previous: prevLeg,
			Next:     nextLeg,
		})
	}

	for _, prevLeg := range previous {
		if !nextSeats[seatKey{prevLeg.Town, prevLeg.District}] {
			diff.Removed = append(diff.Removed, prevLeg)
		}
	}

	return diff
}
