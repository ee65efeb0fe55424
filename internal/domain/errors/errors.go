// Package errors holds the typed failures raised by table operations and codecs.
//
// Every struct error matches its sentinel through errors.Is, so callers can
// either switch on the concrete type or test the kind.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrColumnNotFound       = errors.New("column not found")
	ErrUnexpectedColumn     = errors.New("unexpected column")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrUnsupportedIndexKind = errors.New("unsupported index kind")
	ErrConversion           = errors.New("conversion failed")
	ErrMissingField         = errors.New("missing field")
	ErrEmptyAggregation     = errors.New("empty aggregation")
	ErrEmptySchema          = errors.New("cannot infer columns from zero records")
	ErrZeroStep             = errors.New("slice step cannot be zero")
)

// ColumnNotFoundError is returned when a requested column is absent from the schema
type ColumnNotFoundError struct {
	ColumnName string
	Columns    []string // schema at the time of the lookup
	RowIndex   int      // -1 when the lookup is schema-level
}

func (e *ColumnNotFoundError) Error() string {
	msg := fmt.Sprintf("column '%s' not found", e.ColumnName)
	if len(e.Columns) > 0 {
		msg += fmt.Sprintf(" (columns: %s)", strings.Join(e.Columns, ", "))
	}
	if e.RowIndex >= 0 {
		msg += fmt.Sprintf(" at row %d", e.RowIndex)
	}
	return msg
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// UnexpectedColumnError is returned when a record carries a key outside the schema
type UnexpectedColumnError struct {
	ColumnName string
	RowIndex   int
}

func (e *UnexpectedColumnError) Error() string {
	return fmt.Sprintf("unexpected column '%s' at row %d", e.ColumnName, e.RowIndex)
}

func (e *UnexpectedColumnError) Is(target error) bool { return target == ErrUnexpectedColumn }

// IndexOutOfRangeError is returned for integer positions outside [-Length, Length)
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for table with %d rows", e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

// UnsupportedIndexKindError is returned when an index key is not a slice, position or column list
type UnsupportedIndexKindError struct {
	Kind string
}

func (e *UnsupportedIndexKindError) Error() string {
	return fmt.Sprintf("unsupported index kind %s", e.Kind)
}

func (e *UnsupportedIndexKindError) Is(target error) bool { return target == ErrUnsupportedIndexKind }

// ConversionError wraps a failure raised by a conversion or reducer for one cell
type ConversionError struct {
	Column   string
	RowIndex int         // -1 if unknown
	Value    interface{} // offending cell
	Err      error
}

func (e *ConversionError) Error() string {
	var parts []string

	parts = append(parts, "conversion failed")
	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("column '%s'", e.Column))
	}
	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("row %d", e.RowIndex))
	}
	parts = append(parts, fmt.Sprintf("value=%#v", e.Value))
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

func (e *ConversionError) Unwrap() error { return e.Err }

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// MissingFieldError is returned by writers when a record lacks a declared column
type MissingFieldError struct {
	Column   string
	RowIndex int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d has no value for column '%s'", e.RowIndex, e.Column)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// EmptyAggregationError is returned by reducers invoked over zero elements
type EmptyAggregationError struct {
	Reducer string
	Column  string
}

func (e *EmptyAggregationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s of an empty sequence", e.Reducer)
	}
	return fmt.Sprintf("%s of empty column '%s'", e.Reducer, e.Column)
}

func (e *EmptyAggregationError) Is(target error) bool { return target == ErrEmptyAggregation }
