package frame

import (
	"fmt"
	"strings"
)

// Preview defaults
const (
	DefaultPreviewRows      = 3
	DefaultPreviewThreshold = 10
)

// String renders the default preview
func (t *Table) String() string {
	return t.Preview(DefaultPreviewRows, DefaultPreviewThreshold)
}

// Preview renders every row when the table has at most threshold rows, and
// otherwise the first and last edge rows around an ellipsis. A
// "N rows, M columns" summary line always closes the output.
func (t *Table) Preview(edge, threshold int) string {
	var b strings.Builder

	n := len(t.rows)
	if n > threshold && 2*edge < n {
		for i := 0; i < edge; i++ {
			b.WriteString(t.formatRow(i))
			b.WriteByte('\n')
		}
		b.WriteString("...\n")
		for i := n - edge; i < n; i++ {
			b.WriteString(t.formatRow(i))
			b.WriteByte('\n')
		}
	} else {
		for i := range t.rows {
			b.WriteString(t.formatRow(i))
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "%d rows, %d columns", n, len(t.columns))
	return b.String()
}

func (t *Table) formatRow(i int) string {
	row := t.rows[i]
	parts := make([]string, len(t.columns))
	for j, c := range t.columns {
		if s, ok := row[c].(string); ok {
			parts[j] = fmt.Sprintf("%q: %q", c, s)
		} else {
			parts[j] = fmt.Sprintf("%q: %v", c, row[c])
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
