// Package jsoncodec stores tables as a single JSON document that keeps column
// order and typed cells. Integers decode as int64 and floats as float64; NaN and
// infinities are stored as text because JSON has no literal for them.
package jsoncodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/leengari/babybear/internal/domain/data"
	derrors "github.com/leengari/babybear/internal/domain/errors"
	"github.com/leengari/babybear/internal/frame"
	"github.com/leengari/babybear/internal/storage/writer"
)

// Read loads a table from the JSON file at path
func Read(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	table, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	slog.Info("table loaded",
		slog.String("path", path),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns())),
	)
	return table, nil
}

// Decode parses one JSON table document
func Decode(r io.Reader) (*frame.Table, error) {
	var file TableFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse table json: %w", err)
	}

	records := make([]data.Row, len(file.Rows))
	for i, raw := range file.Rows {
		row := make(data.Row, len(raw))
		for k, msg := range raw {
			v, err := decodeCell(msg)
			if err != nil {
				return nil, fmt.Errorf("row %d column '%s': %w", i, k, err)
			}
			row[k] = v
		}
		records[i] = row
	}

	return frame.NewWithColumns(file.Columns, records)
}

// Write stores t at path using temp + atomic rename
func Write(t *frame.Table, path string) error {
	err := writer.WriteAtomic(path, func(w io.Writer) error {
		return Encode(t, w)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Info("table written",
		slog.String("path", path),
		slog.Int("rows", t.Len()),
		slog.Int("columns", len(t.Columns())),
	)
	return nil
}

// Encode writes t as an indented JSON document
func Encode(t *frame.Table, w io.Writer) error {
	columns := t.Columns()
	file := TableFile{
		Columns:  columns,
		RowCount: t.Len(),
		Rows:     make([]map[string]json.RawMessage, t.Len()),
	}

	for i, row := range t.Rows() {
		out := make(map[string]json.RawMessage, len(columns))
		for _, c := range columns {
			v, ok := row[c]
			if !ok {
				return &derrors.MissingFieldError{Column: c, RowIndex: i}
			}
			msg, err := encodeCell(v)
			if err != nil {
				return fmt.Errorf("failed to marshal row %d column '%s': %w", i, c, err)
			}
			out[c] = msg
		}
		file.Rows[i] = out
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(file)
}

func encodeCell(v interface{}) (json.RawMessage, error) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return json.Marshal(frame.FormatCell(x))
		}
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			// keep floats distinguishable from integers on decode
			s += ".0"
		}
		return json.RawMessage(s), nil
	case int64:
		return json.RawMessage(strconv.FormatInt(x, 10)), nil
	case int:
		return json.RawMessage(strconv.Itoa(x)), nil
	}
	return json.Marshal(v)
}

func decodeCell(msg json.RawMessage) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	n, ok := v.(json.Number)
	if !ok {
		return v, nil
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	return n.Float64()
}
