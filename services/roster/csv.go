package roster

import (
	"bytes"
	"encoding/csv"
	"io"

	"mainelegis/lib/scrapers/mainehouse"

	"github.com/google/renameio/v2"
)

// CsvHeader matches the column layout of the published district_data.csv.
var CsvHeader = []string{"District", "Town", "Member", "Party", "Email", "Phone", "Committees"}

func WriteCSV(w io.Writer, legislators []mainehouse.Legislator) error {
	writer := csv.NewWriter(w)

	err := writer.Write(CsvHeader)
	if err != nil {
		return err
	}
	for _, leg := range legislators {
		err := writer.Write([]string{
			leg.District,
			leg.Town,
			leg.Member,
			leg.Party,
			leg.Email,
			leg.Phone,
			leg.CommitteeList(),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSV atomically replaces the file at `path` with the roster, so
// anything serving the file never sees a partial write.
func ExportCSV(path string, legislators []mainehouse.Legislator) error {
	var buf bytes.Buffer
	err := WriteCSV(&buf, legislators)
	if err != nil {
		return err
	}
	return renameio.WriteFile(path, buf.Bytes(), 0644)
}
