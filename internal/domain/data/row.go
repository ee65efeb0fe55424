package data

// Row represents a single table record
// Key = column name, Value = cell value
type Row map[string]interface{}

// Copy returns a shallow copy of the row.
// Cell values are immutable text or numbers so they are shared, the map is not.
func (r Row) Copy() Row {
	copy := make(Row, len(r))
	for k, v := range r {
		copy[k] = v
	}
	return copy
}

// Project returns a new row holding only the given columns.
// Columns missing from r are skipped; callers validate names beforehand.
func (r Row) Project(columns []string) Row {
	projected := make(Row, len(columns))
	for _, c := range columns {
		if v, ok := r[c]; ok {
			projected[c] = v
		}
	}
	return projected
}

// Text returns the cell as a string and whether it was text.
func (r Row) Text(column string) (string, bool) {
	s, ok := r[column].(string)
	return s, ok
}
