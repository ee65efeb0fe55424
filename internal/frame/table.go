// Package frame implements Table, an eager, row-oriented dataset with an ordered
// column schema.
//
// A Table is owned by a single goroutine. It holds no locks; callers that share
// one across goroutines must synchronize access themselves or hand out copies.
//
// Transform is the only operation that mutates a table. Filter, Slice, At and
// Select return new tables whose rows are shallow copies of the source rows.
package frame

import (
	"fmt"
	"sort"

	"github.com/leengari/babybear/internal/domain/data"
	derrors "github.com/leengari/babybear/internal/domain/errors"
)

// Table represents a list of records sharing one column schema
type Table struct {
	columns  []string
	rows     []data.Row
	observer Observer
}

// New builds a table from caller-supplied records.
// The schema is taken from the keys of the first record, in sorted order, since
// Go maps carry no key order. Use NewWithColumns to keep a specific order.
// Zero records cannot yield a schema and fail with ErrEmptySchema.
func New(records []data.Row) (*Table, error) {
	if len(records) == 0 {
		return nil, derrors.ErrEmptySchema
	}

	columns := make([]string, 0, len(records[0]))
	for k := range records[0] {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	return NewWithColumns(columns, records)
}

// NewWithColumns builds a table with an explicit column order.
// Every record must carry exactly these columns. Records are copied, so later
// changes to the caller's maps do not reach the table.
func NewWithColumns(columns []string, records []data.Row) (*Table, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate column '%s' in schema", c)
		}
		seen[c] = struct{}{}
	}

	rows := make([]data.Row, len(records))
	for i, rec := range records {
		if err := checkRecord(columns, seen, rec, i); err != nil {
			return nil, err
		}
		rows[i] = rec.Copy()
	}

	return &Table{
		columns: append([]string(nil), columns...),
		rows:    rows,
	}, nil
}

// checkRecord enforces the construction invariant for one record
func checkRecord(columns []string, schema map[string]struct{}, rec data.Row, rowIndex int) error {
	for _, c := range columns {
		if _, ok := rec[c]; !ok {
			return &derrors.ColumnNotFoundError{
				ColumnName: c,
				RowIndex:   rowIndex,
			}
		}
	}
	if len(rec) == len(columns) {
		return nil
	}
	for k := range rec {
		if _, ok := schema[k]; !ok {
			return &derrors.UnexpectedColumnError{ColumnName: k, RowIndex: rowIndex}
		}
	}
	return nil
}

// derive wraps rows that were already copied and validated by the caller
func (t *Table) derive(columns []string, rows []data.Row) *Table {
	return &Table{
		columns:  columns,
		rows:     rows,
		observer: t.observer,
	}
}

// WithObserver attaches an observer to t and to every table derived from it.
// It returns t.
func (t *Table) WithObserver(o Observer) *Table {
	t.observer = o
	return t
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns a copy of the column names in schema order
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Rows returns copies of all rows in order
func (t *Table) Rows() []data.Row {
	rows := make([]data.Row, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.Copy()
	}
	return rows
}

// Row returns a copy of the record at position i (negative counts from the end)
func (t *Table) Row(i int) (data.Row, error) {
	pos, err := t.position(i)
	if err != nil {
		return nil, err
	}
	return t.rows[pos].Copy(), nil
}

// HasColumn reports whether name is part of the schema
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t *Table) requireColumn(name string) error {
	if t.HasColumn(name) {
		return nil
	}
	return &derrors.ColumnNotFoundError{
		ColumnName: name,
		Columns:    t.Columns(),
		RowIndex:   -1,
	}
}

// position resolves a possibly negative row position
func (t *Table) position(i int) (int, error) {
	n := len(t.rows)
	if i < -n || i >= n {
		return 0, &derrors.IndexOutOfRangeError{Index: i, Length: n}
	}
	if i < 0 {
		i += n
	}
	return i, nil
}
