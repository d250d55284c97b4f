// SPDX-License-Identifier: MIT
// Package: polarbayes/summary
//
// summary.go: per-group point and interval estimates.
//
// Determinism:
//   • Groups keep first-appearance order; values are sorted before quantiles,
//     so the result does not depend on row order within a group.
//
// Complexity:
//   • Time O(n log n) for n rows, Space O(n).

package summary

import (
	"fmt"
	"slices"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/polarbayes/frame"
)

// Output column names.
const (
	CountName  = "n"
	MeanName   = "mean"
	SDName     = "sd"
	MedianName = "median"
	LowerName  = "lower"
	UpperName  = "upper"
)

const opPointInterval = "PointInterval"

// group collects the rows sharing one key.
type group struct {
	first  int       // row holding the key values
	values []float64 // non-null values
}

// PointInterval summarizes the value column of tidy per key group.
//
// Errors:
//   - frame.ErrColumnNotFound if the value column is missing.
//   - ErrNonNumeric for a string value column.
//   - ErrEmptyGroup if some group has only null values.
func PointInterval(tidy *frame.Frame, opts ...Option) (*frame.Frame, error) {
	cfg := newConfig(opts...)

	// Stage 1 (Validate): value column and keys.
	kind, err := tidy.Kind(cfg.value)
	if err != nil {
		return nil, summaryErrorf(opPointInterval, err)
	}
	if kind == frame.KindString {
		return nil, summaryErrorf(opPointInterval, fmt.Errorf("%q: %w", cfg.value, ErrNonNumeric))
	}
	raw, _ := tidy.Column(cfg.value)
	values, err := frame.Cast(raw, frame.KindFloat)
	if err != nil {
		return nil, summaryErrorf(opPointInterval, err)
	}
	var keys []string
	for _, name := range tidy.Columns() {
		if name != cfg.value && !slices.Contains(cfg.samples, name) {
			keys = append(keys, name)
		}
	}

	// Stage 2 (Prepare): bucket rows by key.
	groups, order, err := bucket(tidy, keys, values)
	if err != nil {
		return nil, summaryErrorf(opPointInterval, err)
	}

	// Stage 3 (Execute): statistics per group.
	lowerP := (1 - cfg.width) / 2
	upperP := 1 - lowerP
	firsts := make([]int, len(order))
	counts := make([]int64, len(order))
	means := make([]float64, len(order))
	sds := make([]float64, len(order))
	medians := make([]float64, len(order))
	lowers := make([]float64, len(order))
	uppers := make([]float64, len(order))
	for i, k := range order {
		g := groups[k]
		x := g.values
		slices.Sort(x)
		firsts[i] = g.first
		counts[i] = int64(len(x))
		means[i], sds[i] = stat.MeanStdDev(x, nil)
		medians[i] = stat.Quantile(0.5, stat.Empirical, x, nil)
		lowers[i] = stat.Quantile(lowerP, stat.Empirical, x, nil)
		uppers[i] = stat.Quantile(upperP, stat.Empirical, x, nil)
	}

	// Stage 4 (Assemble): key columns, then statistics.
	cols := make([]frame.Column, 0, len(keys)+6)
	for _, name := range keys {
		arr, _ := tidy.Column(name)
		picked, err := frame.Pick(arr, firsts)
		if err != nil {
			return nil, summaryErrorf(opPointInterval, err)
		}
		cols = append(cols, frame.Column{Name: name, Values: picked})
	}
	cols = append(cols,
		frame.Column{Name: CountName, Values: frame.Int64s(counts...)},
		frame.Column{Name: MeanName, Values: frame.Float64s(means...)},
		frame.Column{Name: SDName, Values: frame.Float64s(sds...)},
		frame.Column{Name: MedianName, Values: frame.Float64s(medians...)},
		frame.Column{Name: LowerName, Values: frame.Float64s(lowers...)},
		frame.Column{Name: UpperName, Values: frame.Float64s(uppers...)},
	)
	out, err := frame.New(cols...)
	if err != nil {
		return nil, summaryErrorf(opPointInterval, err)
	}

	return out, nil
}

// bucket groups the non-null values by key, keeping first-appearance order.
func bucket(tidy *frame.Frame, keys []string, values arrow.Array) (map[string]*group, []string, error) {
	keyCols := make([]arrow.Array, len(keys))
	for i, name := range keys {
		keyCols[i], _ = tidy.Column(name)
	}

	groups := make(map[string]*group)
	var order []string
	var sb strings.Builder
	for r := 0; r < tidy.NumRows(); r++ {
		sb.Reset()
		for _, col := range keyCols {
			v := frame.Cell(col, r)
			fmt.Fprintf(&sb, "%T:%v\x00", v, v)
		}
		k := sb.String()
		g, ok := groups[k]
		if !ok {
			g = &group{first: r}
			groups[k] = g
			order = append(order, k)
		}
		if v, ok := frame.Cell(values, r).(float64); ok {
			g.values = append(g.values, v)
		}
	}
	for _, k := range order {
		if len(groups[k].values) == 0 {
			return nil, nil, fmt.Errorf("row %d: %w", groups[k].first, ErrEmptyGroup)
		}
	}

	return groups, order, nil
}
