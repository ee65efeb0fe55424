package frame

import (
	"errors"
	"iter"
	"math"

	derrors "github.com/leengari/babybear/internal/domain/errors"
)

// Reducer folds a column's cells, produced lazily in row order, into one value.
// What happens on zero elements is up to the reducer; the built-in reducers
// return an *EmptyAggregationError.
type Reducer func(values iter.Seq[interface{}]) (interface{}, error)

// Aggregate applies r to the cells of column
func (t *Table) Aggregate(r Reducer, column string) (interface{}, error) {
	if err := t.requireColumn(column); err != nil {
		return nil, err
	}

	result, err := r(t.values(column))
	if err != nil {
		return nil, annotateColumn(err, column)
	}

	t.emit(EventAggregate, map[string]interface{}{"column": column, "rows": len(t.rows)})
	return result, nil
}

// Values returns a lazy sequence over the cells of column in row order
func (t *Table) Values(column string) (iter.Seq[interface{}], error) {
	if err := t.requireColumn(column); err != nil {
		return nil, err
	}
	return t.values(column), nil
}

func (t *Table) values(column string) iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		for _, row := range t.rows {
			if !yield(row[column]) {
				return
			}
		}
	}
}

// Mean returns the arithmetic mean of column, skipping missing cells: the
// literal text "nan" and NaN floats left by ToFloat. Remaining cells must
// parse as numbers.
func (t *Table) Mean(column string) (float64, error) {
	if err := t.requireColumn(column); err != nil {
		return 0, err
	}

	var sum float64
	var count int
	for i, row := range t.rows {
		v := row[column]
		if s, ok := v.(string); ok && s == MissingText {
			continue
		}
		f, err := ToFloat(v)
		if err != nil {
			return 0, cellError(err, column, i, v)
		}
		if math.IsNaN(f.(float64)) {
			continue
		}
		sum += f.(float64)
		count++
	}

	if count == 0 {
		return 0, &derrors.EmptyAggregationError{Reducer: "mean", Column: column}
	}

	t.emit(EventAggregate, map[string]interface{}{"column": column, "reducer": "mean", "count": count})
	return sum / float64(count), nil
}

func annotateColumn(err error, column string) error {
	var ce *derrors.ConversionError
	if errors.As(err, &ce) && ce.Column == "" {
		out := *ce
		out.Column = column
		return &out
	}
	var ee *derrors.EmptyAggregationError
	if errors.As(err, &ee) && ee.Column == "" {
		out := *ee
		out.Column = column
		return &out
	}
	return err
}
