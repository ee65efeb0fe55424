package frame

import (
	"fmt"
	"iter"

	derrors "github.com/leengari/babybear/internal/domain/errors"
)

// Max returns the largest element. Numbers compare numerically, text compares
// lexically, and mixing the two is a conversion error. The element itself is
// returned, so a float64 column yields a float64.
func Max(values iter.Seq[interface{}]) (interface{}, error) {
	return extreme("max", values, func(c int) bool { return c > 0 })
}

// Min returns the smallest element, with the same rules as Max
func Min(values iter.Seq[interface{}]) (interface{}, error) {
	return extreme("min", values, func(c int) bool { return c < 0 })
}

// Sum adds numeric elements. All-integer input sums to int64, anything else to
// float64.
func Sum(values iter.Seq[interface{}]) (interface{}, error) {
	var (
		isum   int64
		fsum   float64
		floats bool
		count  int
	)
	for v := range values {
		switch x := v.(type) {
		case int64:
			isum += x
		case int:
			isum += int64(x)
		default:
			f, ok := numeric(v)
			if !ok {
				return nil, notNumeric("sum", v, count)
			}
			fsum += f
			floats = true
		}
		count++
	}

	if count == 0 {
		return nil, &derrors.EmptyAggregationError{Reducer: "sum"}
	}
	if floats {
		return fsum + float64(isum), nil
	}
	return isum, nil
}

// MeanOf returns the float64 mean of numeric elements
func MeanOf(values iter.Seq[interface{}]) (interface{}, error) {
	var sum float64
	var count int
	for v := range values {
		f, ok := numeric(v)
		if !ok {
			return nil, notNumeric("mean", v, count)
		}
		sum += f
		count++
	}
	if count == 0 {
		return nil, &derrors.EmptyAggregationError{Reducer: "mean"}
	}
	return sum / float64(count), nil
}

// Count returns the number of elements as an int. It never fails.
func Count(values iter.Seq[interface{}]) (interface{}, error) {
	n := 0
	for range values {
		n++
	}
	return n, nil
}

// extreme keeps the first element and replaces it whenever better(compare(v, cur))
// holds. NaN never compares greater or smaller, so a leading NaN sticks.
func extreme(name string, values iter.Seq[interface{}], better func(int) bool) (interface{}, error) {
	var (
		current interface{}
		started bool
		pos     int
	)
	for v := range values {
		if !started {
			if _, ok := numeric(v); !ok {
				if _, ok := v.(string); !ok {
					return nil, notNumeric(name, v, pos)
				}
			}
			current, started = v, true
			pos++
			continue
		}
		c, err := compare(v, current)
		if err != nil {
			return nil, &derrors.ConversionError{RowIndex: pos, Value: v, Err: fmt.Errorf("%s: %w", name, err)}
		}
		if better(c) {
			current = v
		}
		pos++
	}

	if !started {
		return nil, &derrors.EmptyAggregationError{Reducer: name}
	}
	return current, nil
}

// compare orders two numbers or two strings. Unordered pairs (NaN) compare as 0.
func compare(a, b interface{}) (int, error) {
	fa, aNum := numeric(a)
	fb, bNum := numeric(b)
	if aNum && bNum {
		switch {
		case fa > fb:
			return 1, nil
		case fa < fb:
			return -1, nil
		}
		return 0, nil
	}

	sa, aText := a.(string)
	sb, bText := b.(string)
	if aText && bText {
		switch {
		case sa > sb:
			return 1, nil
		case sa < sb:
			return -1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot compare %T with %T", a, b)
}

func numeric(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	}
	return 0, false
}

func notNumeric(reducer string, v interface{}, pos int) error {
	return &derrors.ConversionError{
		RowIndex: pos,
		Value:    v,
		Err:      fmt.Errorf("%s: expected a number, got %T", reducer, v),
	}
}
