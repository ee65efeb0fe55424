package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/babybear/internal/frame/testutil"
	"github.com/leengari/babybear/internal/storage"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want storage.Format
		err  bool
	}{
		{"data/penguins.csv", storage.FormatCSV, false},
		{"PENGUINS.CSV", storage.FormatCSV, false},
		{"out.json", storage.FormatJSON, false},
		{"out.parquet", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := storage.FormatOf(tt.path)
			if tt.err {
				require.ErrorIs(t, err, storage.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveLoad_AcrossFormats(t *testing.T) {
	dir := t.TempDir()
	original := testutil.Penguins(t)

	for _, name := range []string{"p.csv", "p.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, storage.Save(original, path))

			back, err := storage.Load(path)
			require.NoError(t, err)
			assert.Equal(t, original.Columns(), back.Columns())
			if diff := cmp.Diff(original.Rows(), back.Rows()); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}

	require.ErrorIs(t, storage.Save(original, filepath.Join(dir, "p.txt")), storage.ErrUnknownFormat)
	_, err := storage.Load(filepath.Join(dir, "p.txt"))
	require.ErrorIs(t, err, storage.ErrUnknownFormat)
}
