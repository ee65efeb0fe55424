package frame_test

import (
	"errors"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/babybear/internal/domain/data"
	derrors "github.com/leengari/babybear/internal/domain/errors"
	"github.com/leengari/babybear/internal/frame"
	"github.com/leengari/babybear/internal/frame/testutil"
)

func numbers(t *testing.T, values ...interface{}) *frame.Table {
	t.Helper()
	records := make([]data.Row, len(values))
	for i, v := range values {
		records[i] = data.Row{"v": v}
	}
	table, err := frame.NewWithColumns([]string{"v"}, records)
	require.NoError(t, err)
	return table
}

func TestAggregate_Reducers(t *testing.T) {
	tests := []struct {
		name    string
		reducer frame.Reducer
		values  []interface{}
		want    interface{}
	}{
		{"max floats", frame.Max, []interface{}{1.5, 9.0, 3.0}, 9.0},
		{"max ints", frame.Max, []interface{}{int64(4), int64(7)}, int64(7)},
		{"max mixed keeps element", frame.Max, []interface{}{int64(4), 7.5}, 7.5},
		{"max text", frame.Max, []interface{}{"Adelie", "Gentoo", "Chinstrap"}, "Gentoo"},
		{"min floats", frame.Min, []interface{}{1.5, -2.0, 3.0}, -2.0},
		{"sum ints", frame.Sum, []interface{}{int64(1), int64(2), int64(3)}, int64(6)},
		{"sum mixed", frame.Sum, []interface{}{int64(1), 0.5}, 1.5},
		{"mean", frame.MeanOf, []interface{}{1.0, 2.0, 6.0}, 3.0},
		{"count", frame.Count, []interface{}{"a", "b"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numbers(t, tt.values...).Aggregate(tt.reducer, "v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_EmptyTableDelegatesToReducer(t *testing.T) {
	empty, err := frame.NewWithColumns([]string{"v"}, nil)
	require.NoError(t, err)

	for name, r := range map[string]frame.Reducer{"max": frame.Max, "min": frame.Min, "sum": frame.Sum, "mean": frame.MeanOf} {
		_, err := empty.Aggregate(r, "v")
		require.ErrorIs(t, err, derrors.ErrEmptyAggregation, name)

		var ee *derrors.EmptyAggregationError
		require.True(t, errors.As(err, &ee))
		assert.Equal(t, "v", ee.Column)
	}

	n, err := empty.Aggregate(frame.Count, "v")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAggregate_UnknownColumn(t *testing.T) {
	_, err := testutil.Penguins(t).Aggregate(frame.Max, "wingspan")
	require.ErrorIs(t, err, derrors.ErrColumnNotFound)
	assert.Contains(t, err.Error(), "wingspan")
}

func TestAggregate_MixedTypesFail(t *testing.T) {
	_, err := numbers(t, 1.0, "two").Aggregate(frame.Max, "v")
	require.ErrorIs(t, err, derrors.ErrConversion)

	var ce *derrors.ConversionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "v", ce.Column)
	assert.Equal(t, 1, ce.RowIndex)

	_, err = numbers(t, "1", "2").Aggregate(frame.Sum, "v")
	require.ErrorIs(t, err, derrors.ErrConversion)
}

func TestAggregate_LazyValues(t *testing.T) {
	table := numbers(t, 1.0, 2.0, 3.0, 4.0)

	pulled := 0
	got, err := table.Aggregate(func(values iter.Seq[interface{}]) (interface{}, error) {
		for v := range values {
			pulled++
			return v, nil
		}
		return nil, errors.New("empty")
	}, "v")
	require.NoError(t, err)
	assert.Equal(t, 1, pulled)
	assert.Equal(t, 1.0, got)

	seq, err := table.Values("v")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1.0, 2.0, 3.0, 4.0}, slices.Collect(seq))
}

func TestMean_SkipsNanText(t *testing.T) {
	table := testutil.Penguins(t)

	got, err := table.Mean("flipper_length_mm")
	require.NoError(t, err)
	// eleven non-missing flippers
	assert.InDelta(t, 2206.0/11.0, got, 1e-9)

	_, err = table.Mean("species")
	require.ErrorIs(t, err, derrors.ErrConversion)

	allMissing := numbers(t, "nan", "nan")
	_, err = allMissing.Mean("v")
	require.ErrorIs(t, err, derrors.ErrEmptyAggregation)
}

func TestMean_SkipsConvertedNaN(t *testing.T) {
	table := testutil.Penguins(t)
	_, err := table.Transform(frame.ToFloat, "flipper_length_mm")
	require.NoError(t, err)

	got, err := table.Mean("flipper_length_mm")
	require.NoError(t, err)
	assert.InDelta(t, 2206.0/11.0, got, 1e-9)

	allMissing := numbers(t, math.NaN(), math.NaN())
	_, err = allMissing.Mean("v")
	require.ErrorIs(t, err, derrors.ErrEmptyAggregation)
}
