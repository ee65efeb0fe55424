package csvcodec_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/babybear/internal/domain/data"
	derrors "github.com/leengari/babybear/internal/domain/errors"
	"github.com/leengari/babybear/internal/frame"
	"github.com/leengari/babybear/internal/frame/testutil"
	"github.com/leengari/babybear/internal/storage/csvcodec"
)

func TestRead_Penguins(t *testing.T) {
	table, err := csvcodec.Read(filepath.Join("testdata", "penguins.csv"))
	require.NoError(t, err)

	assert.Equal(t, testutil.PenguinColumns, table.Columns())
	if diff := cmp.Diff(testutil.PenguinRecords(), table.Rows()); diff != "" {
		t.Errorf("decoded rows mismatch (-want +got):\n%s", diff)
	}

	missing, err := table.Row(3)
	require.NoError(t, err)
	assert.Equal(t, "nan", missing["body_mass_g"], "nan stays literal text")
}

func TestRead_MissingFile(t *testing.T) {
	_, err := csvcodec.Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_QuotedFields(t *testing.T) {
	in := "name,quote\n\"Hayes, A.\",\"said \"\"hi\"\"\"\n"

	table, err := csvcodec.Decode(strings.NewReader(in))
	require.NoError(t, err)

	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, data.Row{"name": "Hayes, A.", "quote": `said "hi"`}, row)
}

func TestDecode_HeaderOnly(t *testing.T) {
	table, err := csvcodec.Decode(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{"a", "b"}, table.Columns())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"short record", "a,b\n1\n"},
		{"long record", "a,b\n1,2,3\n"},
		{"duplicate header", "a,a\n1,2\n"},
		{"bare quote", "a\nx\"y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := csvcodec.Decode(strings.NewReader(tt.in))
			require.Error(t, err)
		})
	}

	_, err := csvcodec.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, csvcodec.ErrNoHeader)
}

func TestDecode_StripsBOM(t *testing.T) {
	table, err := csvcodec.Decode(strings.NewReader("\uFEFFa,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Columns())
}

func TestRoundTrip(t *testing.T) {
	original := testutil.Penguins(t)
	path := filepath.Join(t.TempDir(), "penguins.csv")

	require.NoError(t, csvcodec.Write(original, path))
	back, err := csvcodec.Read(path)
	require.NoError(t, err)

	assert.Equal(t, original.Columns(), back.Columns())
	if diff := cmp.Diff(original.Rows(), back.Rows()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_SingleColumnEmptyCell(t *testing.T) {
	original, err := frame.NewWithColumns([]string{"note"}, []data.Row{
		{"note": "a"},
		{"note": ""},
		{"note": "b"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvcodec.Encode(original, &buf))
	assert.Equal(t, "note\na\n\"\"\nb\n", buf.String())

	back, err := csvcodec.Decode(&buf)
	require.NoError(t, err)
	testutil.AssertShape(t, back, 3, 1)
	if diff := cmp.Diff(original.Rows(), back.Rows()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_ConvertedColumnsReparse(t *testing.T) {
	original := testutil.Penguins(t)
	_, err := original.Transform(frame.ToFloat, "bill_length_mm")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvcodec.Encode(original, &buf))

	back, err := csvcodec.Decode(&buf)
	require.NoError(t, err)
	_, err = back.Transform(frame.ToFloat, "bill_length_mm")
	require.NoError(t, err)

	want, err := original.Values("bill_length_mm")
	require.NoError(t, err)
	got, err := back.Values("bill_length_mm")
	require.NoError(t, err)

	var w, g []string
	for v := range want {
		w = append(w, frame.FormatCell(v))
	}
	for v := range got {
		g = append(g, frame.FormatCell(v))
	}
	assert.Equal(t, w, g)
}

func TestEncode_ColumnOrder(t *testing.T) {
	table := testutil.Penguins(t)
	selected, err := table.Select("year", "species")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvcodec.Encode(selected.Head(2), &buf))
	assert.Equal(t, "year,species\n2007,Adelie\n2007,Adelie\n", buf.String())
}

func TestEncodeRecords_MissingField(t *testing.T) {
	records := []data.Row{
		{"a": "1", "b": "2"},
		{"a": "3"},
	}

	var buf bytes.Buffer
	err := csvcodec.EncodeRecords([]string{"a", "b"}, records, &buf)
	require.ErrorIs(t, err, derrors.ErrMissingField)

	var mf *derrors.MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "b", mf.Column)
	assert.Equal(t, 1, mf.RowIndex)
}

func TestWrite_FailureLeavesNoFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing-dir")
	err := csvcodec.Write(testutil.Penguins(t), filepath.Join(dir, "out.csv"))
	require.Error(t, err)
}
