// Package testutil holds shared fixtures for table and codec tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/leengari/babybear/internal/domain/data"
	"github.com/leengari/babybear/internal/frame"
)

// PenguinColumns is the header of the penguins sample, in file order
var PenguinColumns = []string{
	"species", "island", "bill_length_mm", "bill_depth_mm",
	"flipper_length_mm", "body_mass_g", "sex", "year",
}

// PenguinsCSV is a twelve-row sample of the Palmer penguins data.
// Row 3 is the classic all-missing Adelie record.
const PenguinsCSV = `species,island,bill_length_mm,bill_depth_mm,flipper_length_mm,body_mass_g,sex,year
Adelie,Torgersen,39.1,18.7,181,3750,male,2007
Adelie,Torgersen,39.5,17.4,186,3800,female,2007
Adelie,Torgersen,40.3,18,195,3250,female,2007
Adelie,Torgersen,nan,nan,nan,nan,nan,2007
Adelie,Torgersen,36.7,19.3,193,3450,female,2007
Gentoo,Biscoe,46.1,13.2,211,4500,female,2007
Gentoo,Biscoe,50.2,14.3,218,5400,male,2008
Gentoo,Biscoe,49,16.1,216,5550,male,2008
Chinstrap,Dream,49.5,19,200,3800,male,2008
Chinstrap,Dream,50.9,17.9,196,3675,female,2009
Gentoo,Biscoe,49.9,16.1,213,5400,male,2009
Chinstrap,Dream,52,19,197,4150,male,2009
`

// PenguinRecords returns the penguins sample as text records
func PenguinRecords() []data.Row {
	lines := strings.Split(strings.TrimSpace(PenguinsCSV), "\n")[1:]
	records := make([]data.Row, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, ",")
		row := make(data.Row, len(PenguinColumns))
		for i, c := range PenguinColumns {
			row[c] = fields[i]
		}
		records = append(records, row)
	}
	return records
}

// Penguins builds a fresh penguins table
func Penguins(t *testing.T) *frame.Table {
	t.Helper()
	table, err := frame.NewWithColumns(PenguinColumns, PenguinRecords())
	if err != nil {
		t.Fatalf("building penguins table: %v", err)
	}
	return table
}

// CreateTestTable builds a small table of users with the given row count
func CreateTestTable(t *testing.T, rows int) *frame.Table {
	t.Helper()
	records := make([]data.Row, rows)
	for i := range records {
		records[i] = data.Row{
			"id":   strings.Repeat("1", i+1),
			"name": "user" + string(rune('a'+i%26)),
		}
	}
	table, err := frame.NewWithColumns([]string{"id", "name"}, records)
	if err != nil {
		t.Fatalf("building test table: %v", err)
	}
	return table
}
