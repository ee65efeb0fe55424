package testutil

import (
	"slices"
	"testing"

	"github.com/leengari/babybear/internal/domain/data"
	"github.com/leengari/babybear/internal/frame"
)

// AssertShape checks a table's row and column counts together
func AssertShape(t *testing.T, table *frame.Table, rows, columns int) {
	t.Helper()
	if table.Len() != rows || len(table.Columns()) != columns {
		t.Errorf("table shape: want %d rows x %d columns, got %d x %d %v",
			rows, columns, table.Len(), len(table.Columns()), table.Columns())
	}
}

// AssertLen checks the number of rows in a table
func AssertLen(t *testing.T, table *frame.Table, rows int, context string) {
	t.Helper()
	if table.Len() != rows {
		t.Errorf("%s: table has %d rows, want %d", context, table.Len(), rows)
	}
}

// AssertRowFields checks that row carries exactly the given columns
func AssertRowFields(t *testing.T, row data.Row, columns ...string) {
	t.Helper()
	got := make([]string, 0, len(row))
	for c := range row {
		got = append(got, c)
	}
	slices.Sort(got)
	want := slices.Sorted(slices.Values(columns))
	if !slices.Equal(got, want) {
		t.Errorf("row fields: want %v, got %v", want, got)
	}
}
