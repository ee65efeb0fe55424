package jsoncodec

import "encoding/json"

// TableFile is the on-disk JSON shape of a table
type TableFile struct {
	Columns  []string                     `json:"columns"`
	RowCount int                          `json:"row_count"`
	Rows     []map[string]json.RawMessage `json:"rows"`
}
