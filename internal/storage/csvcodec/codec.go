// Package csvcodec reads and writes tables as comma-delimited text.
//
// The first line is the header. Every cell decodes as text, including the
// literal "nan" used for missing values. Fields holding commas or quotes are
// wrapped in double quotes.
package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leengari/babybear/internal/domain/data"
	derrors "github.com/leengari/babybear/internal/domain/errors"
	"github.com/leengari/babybear/internal/frame"
	"github.com/leengari/babybear/internal/storage/writer"
)

const bom = "\uFEFF"

// ErrNoHeader is returned for input without a header line
var ErrNoHeader = errors.New("csv: missing header line")

// Read loads a table from the file at path
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

// Decode reads a header line followed by records.
// A header with no records gives an empty table with that schema.
func Decode(r io.Reader) (*frame.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = ','

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	header[0] = strings.TrimPrefix(header[0], bom)

	var records []data.Row
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(data.Row, len(header))
		for i, name := range header {
			row[name] = fields[i]
		}
		records = append(records, row)
	}

	return frame.NewWithColumns(header, records)
}

// Write stores t at path. The file is replaced only if encoding succeeds.
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

// Encode writes the header in column order followed by one line per row
func Encode(t *frame.Table, w io.Writer) error {
	return EncodeRecords(t.Columns(), t.Rows(), w)
}

// EncodeRecords writes arbitrary records under the given header.
// A record without a value for one of columns fails with *MissingFieldError;
// keys outside columns are ignored.
func EncodeRecords(columns []string, records []data.Row, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := writeLine(cw, w, columns); err != nil {
		return err
	}

	fields := make([]string, len(columns))
	for i, rec := range records {
		for j, c := range columns {
			v, ok := rec[c]
			if !ok {
				return &derrors.MissingFieldError{Column: c, RowIndex: i}
			}
			fields[j] = frame.FormatCell(v)
		}
		if err := writeLine(cw, w, fields); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeLine writes one record. A lone empty field would come out as a blank
// line, which csv.Reader skips, so it is written as a quoted empty string.
func writeLine(cw *csv.Writer, w io.Writer, fields []string) error {
	if len(fields) != 1 || fields[0] != "" {
		return cw.Write(fields)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, `""`+"\n")
	return err
}
