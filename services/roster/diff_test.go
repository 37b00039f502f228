package roster

import (
	"testing"

	"mainelegis/lib/scrapers/mainehouse"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDiffRosters(t *testing.T) {
	lemelin := mainehouse.Legislator{
		District:   "53",
		Town:       "Randolph",
		Member:     "Michael H. Lemelin",
		Party:      "R - Chelsea",
		Email:      "Michael.Lemelin@legislature.maine.gov",
		Phone:      "(207) 582-1707",
		Committees: []string{"Judiciary"},
	}
	olsen := mainehouse.Legislator{
		District:   "86",
		Town:       "Raymond",
		Member:     "Rolf A. Olsen",
		Party:      "R - Raymond",
		Email:      "Rolf.Olsen@legislature.maine.gov",
		Phone:      "(207) 655-4844",
		Committees: []string{"Transportation"},
	}

	t.Run("identical rosters", func(t *testing.T) {
		diff := DiffRosters(
			[]mainehouse.Legislator{lemelin, olsen},
			[]mainehouse.Legislator{lemelin, olsen},
		)
		require.True(t, diff.Empty())
	})

	t.Run("added and removed municipalities", func(t *testing.T) {
		diff := DiffRosters(
			[]mainehouse.Legislator{lemelin},
			[]mainehouse.Legislator{olsen},
		)
		expected := RosterDiff{
			Added:   []mainehouse.Legislator{olsen},
			Removed: []mainehouse.Legislator{lemelin},
		}
		if d := cmp.Diff(expected, diff); d != "" {
			t.Fatal(d)
		}
	})

	t.Run("details changed", func(t *testing.T) {
		moved := lemelin
		moved.Phone = "(207) 555-0000"
		moved.Committees = []string{"Judiciary", "Marine Resources"}

		diff := DiffRosters(
			[]mainehouse.Legislator{lemelin, olsen},
			[]mainehouse.Legislator{moved, olsen},
		)
		expected := RosterDiff{
			Changed: []Change{
				{
					Town:     "Randolph",
					Kind:     DetailsChanged,
					Previous: lemelin,
					Next:     moved,
				},
			},
		}
		if d := cmp.Diff(expected, diff); d != "" {
			t.Fatal(d)
		}
	})

	t.Run("name corrected", func(t *testing.T) {
		corrected := lemelin
		corrected.Member = "Michael Lemelin"

		diff := DiffRosters(
			[]mainehouse.Legislator{lemelin},
			[]mainehouse.Legislator{corrected},
		)
		require.Len(t, diff.Changed, 1)
		require.Equal(t, NameCorrected, diff.Changed[0].Kind)
		require.Empty(t, diff.Added)
		require.Empty(t, diff.Removed)
	})

	t.Run("seat replaced", func(t *testing.T) {
		successor := mainehouse.Legislator{
			District: "53",
			Town:     "Randolph",
			Member:   "Jane Doe",
			Party:    "D - Randolph",
		}

		diff := DiffRosters(
			[]mainehouse.Legislator{lemelin},
			[]mainehouse.Legislator{successor},
		)
		require.Len(t, diff.Changed, 1)
		require.Equal(t, SeatReplaced, diff.Changed[0].Kind)
	})

	t.Run("case and spacing do not count as changes", func(t *testing.T) {
		shouty := lemelin
		shouty.Member = "MICHAEL H.  LEMELIN"

		diff := DiffRosters(
			[]mainehouse.Legislator{lemelin},
			[]mainehouse.Legislator{shouty},
		)
		require.True(t, diff.Empty())
	})

	t.Run("split municipality spans two districts", func(t *testing.T) {
		// "Auburn (Part)" is listed once per district it spans; two
		// identical rosters must not report the seats against each other
		chapman := mainehouse.Legislator{
			District: "88",
			Town:     "Auburn (Part)",
			Member:   "Quentin J. Chapman",
			Party:    "R - Auburn",
		}
		lee := mainehouse.Legislator{
			District: "89",
			Town:     "Auburn (Part)",
			Member:   "Adam R. Lee",
			Party:    "D - Auburn",
		}

		roster := []mainehouse.Legislator{chapman, lee}
		diff := DiffRosters(roster, roster)
		require.True(t, diff.Empty())

		// one of the two districts changing hands only touches that seat
		successor := lee
		successor.Member = "Jane Doe"
		diff = DiffRosters(roster, []mainehouse.Legislator{chapman, successor})
		require.Empty(t, diff.Added)
		require.Empty(t, diff.Removed)
		require.Len(t, diff.Changed, 1)
		require.Equal(t, SeatReplaced, diff.Changed[0].Kind)
		require.Equal(t, "89", diff.Changed[0].Next.District)
	})

	t.Run("empty previous roster", func(t *testing.T) {
		diff := DiffRosters(nil, []mainehouse.Legislator{lemelin, olsen})
		require.Len(t, diff.Added, 2)
		require.Empty(t, diff.Removed)
		require.Empty(t, diff.Changed)
	})
}
