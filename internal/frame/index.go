package frame

import (
	"fmt"
	"math"

	"github.com/leengari/babybear/internal/domain/data"
	derrors "github.com/leengari/babybear/internal/domain/errors"
)

// Key selects part of a table. The concrete kinds are SliceKey, PosKey and
// ColumnsKey.
type Key interface {
	keyKind() string
}

// SliceKey selects a row range with start/stop/step semantics. Negative bounds
// count from the end and out-of-range bounds are clamped. Step must not be zero.
type SliceKey struct {
	Start, Stop, Step int
}

// PosKey selects one row. Negative positions count from the end.
type PosKey int

// ColumnsKey restricts every row to the listed columns, in that order
type ColumnsKey []string

func (SliceKey) keyKind() string   { return "slice" }
func (PosKey) keyKind() string     { return "position" }
func (ColumnsKey) keyKind() string { return "columns" }

// Range is the SliceKey for [start, stop) with step 1
func Range(start, stop int) SliceKey {
	return SliceKey{Start: start, Stop: stop, Step: 1}
}

// Index dispatches on the key kind. A nil key fails with UnsupportedIndexKind.
func (t *Table) Index(key Key) (*Table, error) {
	switch k := key.(type) {
	case SliceKey:
		return t.Slice(k.Start, k.Stop, k.Step)
	case PosKey:
		return t.At(int(k))
	case ColumnsKey:
		return t.Select(k...)
	case nil:
		return nil, &derrors.UnsupportedIndexKindError{Kind: "<nil>"}
	default:
		return nil, &derrors.UnsupportedIndexKindError{Kind: fmt.Sprintf("%T", key)}
	}
}

// Slice returns a new table with the rows start:stop:step
func (t *Table) Slice(start, stop, step int) (*Table, error) {
	if step == 0 {
		return nil, derrors.ErrZeroStep
	}

	positions := slicePositions(len(t.rows), start, stop, step)
	rows := make([]data.Row, len(positions))
	for i, p := range positions {
		rows[i] = t.rows[p].Copy()
	}

	t.emit(EventIndex, map[string]interface{}{"start": start, "stop": stop, "step": step, "rows": len(rows)})
	return t.derive(t.Columns(), rows), nil
}

// Head returns the first min(n, Len()) rows
func (t *Table) Head(n int) *Table {
	out, _ := t.Slice(0, n, 1)
	return out
}

// SliceFrom returns the rows from start to the end
func (t *Table) SliceFrom(start int) *Table {
	out, _ := t.Slice(start, math.MaxInt, 1)
	return out
}

// Tail returns the last min(n, Len()) rows
func (t *Table) Tail(n int) *Table {
	if n <= 0 {
		return t.derive(t.Columns(), []data.Row{})
	}
	return t.SliceFrom(-n)
}

// At returns a one-row table holding the row at pos
func (t *Table) At(pos int) (*Table, error) {
	i, err := t.position(pos)
	if err != nil {
		return nil, err
	}

	t.emit(EventIndex, map[string]interface{}{"position": pos})
	return t.derive(t.Columns(), []data.Row{t.rows[i].Copy()}), nil
}

// Select returns a new table with every row restricted to columns, in the
// requested order. The row set is unchanged.
func (t *Table) Select(columns ...string) (*Table, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if err := t.requireColumn(c); err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("column '%s' selected twice", c)
		}
		seen[c] = struct{}{}
	}

	cols := append([]string(nil), columns...)
	rows := make([]data.Row, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.Project(cols)
	}

	t.emit(EventSelect, map[string]interface{}{"columns": cols})
	return t.derive(cols, rows), nil
}

// slicePositions resolves start:stop:step against n rows
func slicePositions(n, start, stop, step int) []int {
	// any step beyond the table length selects at most one row
	if step > n {
		step = n + 1
	} else if step < -n {
		step = -n - 1
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	start = clampBound(start, n, lower, upper)
	stop = clampBound(stop, n, lower, upper)

	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out
}

func clampBound(b, n, lower, upper int) int {
	if b < 0 {
		b += n
		if b < lower {
			b = lower
		}
	} else if b > upper {
		b = upper
	}
	return b
}
