// Package predicate turns simple textual conditions such as
// "bill_length_mm > 49" into row predicates for Table.FilterE.
package predicate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leengari/babybear/internal/domain/data"
	"github.com/leengari/babybear/internal/frame"
)

// Func tests a row and may fail if a cell cannot be compared
type Func func(data.Row) (bool, error)

// Condition compares one column with a literal
type Condition struct {
	Column   string
	Operator string // =, !=, <, <=, >, >=
	Value    string
	Numeric  bool // compare as numbers instead of text
}

var operators = []string{"<=", ">=", "!=", "<>", "==", "=", "<", ">"}

// Parse reads "column op value". The operator is the leftmost one in expr,
// the longest when several start there. The comparison is numeric when the
// value parses as a number.
func Parse(expr string) (Condition, error) {
	idx, op := -1, ""
	for _, candidate := range operators {
		i := strings.Index(expr, candidate)
		if i < 0 {
			continue
		}
		if idx < 0 || i < idx || (i == idx && len(candidate) > len(op)) {
			idx, op = i, candidate
		}
	}
	if idx < 0 {
		return Condition{}, fmt.Errorf("no comparison operator in %q", expr)
	}

	col := strings.TrimSpace(expr[:idx])
	val := strings.TrimSpace(expr[idx+len(op):])
	if col == "" || val == "" {
		return Condition{}, fmt.Errorf("incomplete condition %q", expr)
	}

	switch op {
	case "==":
		op = "="
	case "<>":
		op = "!="
	}

	_, numErr := strconv.ParseFloat(val, 64)
	return Condition{
		Column:   col,
		Operator: op,
		Value:    strings.Trim(val, `"'`),
		Numeric:  numErr == nil,
	}, nil
}

// Build converts a condition into a predicate function
func Build(c Condition) (Func, error) {
	if c.Numeric {
		target, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("condition on '%s': %q is not a number", c.Column, c.Value)
		}
		cmp, err := comparator[float64](c.Operator)
		if err != nil {
			return nil, err
		}
		return func(row data.Row) (bool, error) {
			v, err := frame.ToFloat(row[c.Column])
			if err != nil {
				return false, fmt.Errorf("column '%s': %w", c.Column, err)
			}
			return cmp(v.(float64), target), nil
		}, nil
	}

	cmp, err := comparator[string](c.Operator)
	if err != nil {
		return nil, err
	}
	return func(row data.Row) (bool, error) {
		return cmp(frame.FormatCell(row[c.Column]), c.Value), nil
	}, nil
}

// All combines predicates with AND; no predicates match every row
func All(preds ...Func) Func {
	return func(row data.Row) (bool, error) {
		for _, p := range preds {
			ok, err := p(row)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Any combines predicates with OR
func Any(preds ...Func) Func {
	return func(row data.Row) (bool, error) {
		for _, p := range preds {
			ok, err := p(row)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

func comparator[T float64 | string](op string) (func(a, b T) bool, error) {
	switch op {
	case "=":
		return func(a, b T) bool { return a == b }, nil
	case "!=":
		return func(a, b T) bool { return a != b }, nil
	case "<":
		return func(a, b T) bool { return a < b }, nil
	case "<=":
		return func(a, b T) bool { return a <= b }, nil
	case ">":
		return func(a, b T) bool { return a > b }, nil
	case ">=":
		return func(a, b T) bool { return a >= b }, nil
	}
	return nil, fmt.Errorf("unsupported operator: %s", op)
}
