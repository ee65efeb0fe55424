package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leengari/babybear/internal/domain/data"
	"github.com/leengari/babybear/internal/frame"
	"github.com/leengari/babybear/internal/query/predicate"
	"github.com/leengari/babybear/internal/storage"
)

var reducers = map[string]frame.Reducer{
	"max":   frame.Max,
	"min":   frame.Min,
	"sum":   frame.Sum,
	"mean":  frame.MeanOf,
	"count": frame.Count,
}

func reducerNames() string {
	names := make([]string, 0, len(reducers))
	for n := range reducers {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func newShowCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a preview of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			if all {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Preview(t.Len(), t.Len()))
				return err
			}
			return a.emit(cmd, t)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every row")
	return cmd
}

func newSelectCmd(a *app) *cobra.Command {
	var columns string

	cmd := &cobra.Command{
		Use:   "select FILE",
		Short: "Keep only the given columns, in the given order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			out, err := t.Select(splitColumns(columns)...)
			if err != nil {
				return err
			}
			return a.emit(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&columns, "columns", "c", "", "comma-separated column names")
	cmd.MarkFlagRequired("columns")
	addOutputFlag(cmd, a)
	return cmd
}

func newSliceCmd(a *app) *cobra.Command {
	var start, stop, step int

	cmd := &cobra.Command{
		Use:   "slice FILE",
		Short: "Keep rows start:stop:step (negative bounds count from the end)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			out, err := t.Slice(start, stop, step)
			if err != nil {
				return err
			}
			return a.emit(cmd, out)
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "first row position")
	cmd.Flags().IntVar(&stop, "stop", math.MaxInt, "position to stop before")
	cmd.Flags().IntVar(&step, "step", 1, "row step, may be negative")
	addOutputFlag(cmd, a)
	return cmd
}

func newRowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row FILE POSITION",
		Short: "Print a single row; negative positions count from the end",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[1], err)
			}
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			out, err := t.At(pos)
			if err != nil {
				return err
			}
			return a.emit(cmd, out)
		},
	}
	addOutputFlag(cmd, a)
	return cmd
}

func newWhereCmd(a *app) *cobra.Command {
	var (
		conditions []string
		matchAny   bool
	)

	cmd := &cobra.Command{
		Use:   "where FILE",
		Short: `Keep rows matching conditions such as "bill_length_mm > 49"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := buildFilter(conditions, matchAny)
			if err != nil {
				return err
			}
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			out, err := t.FilterE(pred)
			if err != nil {
				return err
			}
			return a.emit(cmd, out)
		},
	}
	cmd.Flags().StringArrayVarP(&conditions, "where", "w", nil, "condition 'column op value' (repeatable)")
	cmd.Flags().BoolVar(&matchAny, "any", false, "keep rows matching any condition instead of all")
	cmd.MarkFlagRequired("where")
	addOutputFlag(cmd, a)
	return cmd
}

func newAggCmd(a *app) *cobra.Command {
	var (
		column     string
		reducer    string
		numeric    bool
		conditions []string
	)

	cmd := &cobra.Command{
		Use:   "agg FILE",
		Short: "Reduce one column to a single value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := reducers[reducer]
			if !ok {
				return fmt.Errorf("unknown reducer %q (want %s)", reducer, reducerNames())
			}
			t, err := a.load(args[0])
			if err != nil {
				return err
			}

			if len(conditions) > 0 {
				pred, err := buildFilter(conditions, false)
				if err != nil {
					return err
				}
				if t, err = t.FilterE(pred); err != nil {
					return err
				}
			}
			if numeric {
				if t, err = numericColumn(t, column); err != nil {
					return err
				}
			}

			result, err := t.Aggregate(r, column)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), frame.FormatCell(result))
			return err
		},
	}
	cmd.Flags().StringVarP(&column, "column", "c", "", "column to reduce")
	cmd.Flags().StringVarP(&reducer, "reducer", "r", "max", "reducer: "+reducerNames())
	cmd.Flags().BoolVar(&numeric, "numeric", true, "drop 'nan' cells and parse the column as numbers first")
	cmd.Flags().StringArrayVarP(&conditions, "where", "w", nil, "only aggregate rows matching 'column op value' (repeatable)")
	cmd.MarkFlagRequired("column")
	return cmd
}

func newMeanCmd(a *app) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "mean FILE",
		Short: "Average a column, skipping 'nan' cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			m, err := t.Mean(column)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), frame.FormatCell(m))
			return err
		},
	}
	cmd.Flags().StringVarP(&column, "column", "c", "", "column to average")
	cmd.MarkFlagRequired("column")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Re-encode a table between .csv and .json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			return storage.Save(t, args[1])
		},
	}
}

func buildFilter(conditions []string, matchAny bool) (predicate.Func, error) {
	preds := make([]predicate.Func, 0, len(conditions))
	for _, expr := range conditions {
		cond, err := predicate.Parse(expr)
		if err != nil {
			return nil, err
		}
		p, err := predicate.Build(cond)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	if matchAny {
		return predicate.Any(preds...), nil
	}
	return predicate.All(preds...), nil
}

// numericColumn drops rows whose cell is the missing literal and parses the rest
func numericColumn(t *frame.Table, column string) (*frame.Table, error) {
	if !t.HasColumn(column) {
		// let Aggregate report the missing column
		return t, nil
	}
	present := t.Filter(func(row data.Row) bool {
		s, ok := row.Text(column)
		return !ok || strings.TrimSpace(s) != frame.MissingText
	})
	return present.Transform(frame.ToFloat, column)
}
