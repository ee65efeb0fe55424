// Package storage picks a table codec from the file extension.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leengari/babybear/internal/frame"
	"github.com/leengari/babybear/internal/storage/csvcodec"
	"github.com/leengari/babybear/internal/storage/jsoncodec"
)

// ErrUnknownFormat is returned for paths without a supported extension
var ErrUnknownFormat = errors.New("unknown table format")

// Format identifies a table codec
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// FormatOf returns the codec for path based on its extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads the table at path
func Load(path string) (*frame.Table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return jsoncodec.Read(path)
	default:
		return csvcodec.Read(path)
	}
}

// Save writes t to path
func Save(t *frame.Table, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		return jsoncodec.Write(t, path)
	default:
		return csvcodec.Write(t, path)
	}
}
