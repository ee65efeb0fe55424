package frame

import (
	"errors"
	"fmt"

	"github.com/leengari/babybear/internal/domain/data"
	derrors "github.com/leengari/babybear/internal/domain/errors"
)

// Conversion maps a single cell value to its replacement
type Conversion func(v interface{}) (interface{}, error)

// Predicate tests whether a row should be kept
type Predicate func(row data.Row) bool

// Transform replaces every cell of the named columns with conv(cell) and returns
// the receiver, so calls can be chained.
//
// Transform MUTATES t. Column names are all checked before any cell changes.
// Cells are then converted column by column, in row order, and the first
// conversion failure is returned as a *ConversionError. Columns and rows
// handled before the failure stay converted.
func (t *Table) Transform(conv Conversion, columns ...string) (*Table, error) {
	if len(columns) == 0 {
		return t, fmt.Errorf("transform: at least one column is required")
	}
	for _, c := range columns {
		if err := t.requireColumn(c); err != nil {
			return t, err
		}
	}

	for _, c := range columns {
		for i, row := range t.rows {
			v, err := conv(row[c])
			if err != nil {
				return t, cellError(err, c, i, row[c])
			}
			row[c] = v
		}
	}

	t.emit(EventTransform, map[string]interface{}{"columns": columns, "rows": len(t.rows)})
	return t, nil
}

// Filter returns a new table holding copies of the rows for which pred is true,
// in their original order. The predicate sees a copy of each row, so t is never
// changed.
func (t *Table) Filter(pred Predicate) *Table {
	kept := make([]data.Row, 0, len(t.rows))
	for _, row := range t.rows {
		if pred(row.Copy()) {
			kept = append(kept, row.Copy())
		}
	}

	out := t.derive(t.Columns(), kept)
	t.emit(EventFilter, map[string]interface{}{"in": len(t.rows), "out": len(kept)})
	return out
}

// FilterE is Filter for predicates that can fail. The first predicate error is
// returned unchanged and no table is produced.
func (t *Table) FilterE(pred func(row data.Row) (bool, error)) (*Table, error) {
	kept := make([]data.Row, 0, len(t.rows))
	for i, row := range t.rows {
		ok, err := pred(row.Copy())
		if err != nil {
			return nil, fmt.Errorf("filter predicate at row %d: %w", i, err)
		}
		if ok {
			kept = append(kept, row.Copy())
		}
	}

	out := t.derive(t.Columns(), kept)
	t.emit(EventFilter, map[string]interface{}{"in": len(t.rows), "out": len(kept)})
	return out, nil
}

// cellError attaches column and row to a conversion failure
func cellError(err error, column string, rowIndex int, value interface{}) error {
	var ce *derrors.ConversionError
	if errors.As(err, &ce) {
		out := *ce
		if out.Column == "" {
			out.Column = column
		}
		if out.RowIndex < 0 {
			out.RowIndex = rowIndex
		}
		return &out
	}
	return &derrors.ConversionError{
		Column:   column,
		RowIndex: rowIndex,
		Value:    value,
		Err:      err,
	}
}
