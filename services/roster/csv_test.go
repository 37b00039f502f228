package roster

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"mainelegis/lib/scrapers/mainehouse"

	"github.com/stretchr/testify/require"
)

var csvFixture = []mainehouse.Legislator{
	{
		District:   "31",
		Town:       "plantation Lake View",
		Member:     "Chad R. Perkins",
		Party:      "R - Dover-Foxcroft",
		Email:      "Chad.Perkins@legislature.maine.gov",
		Phone:      "(207) 279-0927",
		Committees: []string{"Criminal Justice and Public Safety", "Government Oversight Committee"},
	},
	{
		District: "23",
		Town:     "Manchester",
		Member:   "John Smith",
		Party:    "Democrat",
	},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, csvFixture)
	require.NoError(t, err)

	expected := "District,Town,Member,Party,Email,Phone,Committees\n" +
		"31,plantation Lake View,Chad R. Perkins,R - Dover-Foxcroft,Chad.Perkins@legislature.maine.gov,(207) 279-0927,Criminal Justice and Public Safety; Government Oversight Committee\n" +
		"23,Manchester,John Smith,Democrat,,,\n"
	require.Equal(t, expected, buf.String())
}

func TestWriteCSVEmptyRoster(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, nil)
	require.NoError(t, err)
	require.Equal(t, "District,Town,Member,Party,Email,Phone,Committees\n", buf.String())
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "district_data.csv")

	err := ExportCSV(path, csvFixture)
	require.NoError(t, err)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// a second export replaces the file in place
	err = ExportCSV(path, csvFixture[:1])
	require.NoError(t, err)

	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NotEqual(t, string(first), string(second))
	require.Contains(t, string(second), "Chad R. Perkins")
	require.NotContains(t, string(second), "John Smith")
}
