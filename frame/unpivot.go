// SPDX-License-Identifier: MIT
// Package: polarbayes/frame
//
// unpivot.go: wide → long reshaping.
//
// Layout of the result:
//
//	<index columns...> | variableName (String) | valueName (supertype of on)
//
// Rows are emitted column-major: all rows of the first value column, then all
// rows of the second, and so on. Index values (nulls included) are repeated
// unchanged for every value column.
//
// Complexity:
//   • Time O(rows · len(on) · cols), Space O(rows · len(on)).

package frame

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Unpivot stacks the on columns into a label column and a value column,
// keeping index as identifier columns.
//
// Inputs:
//   - index: identifier columns, kept in the given order.
//   - on: value columns; nil means every column not in index, in frame order.
//   - variableName, valueName: names of the label and value columns.
//
// Errors:
//   - ErrColumnNotFound for unknown index/on names.
//   - ErrDuplicateColumn if variableName or valueName collides with index or
//     with each other.
//   - ErrNothingToUnpivot when no value column remains.
func (f *Frame) Unpivot(index, on []string, variableName, valueName string) (*Frame, error) {
	// Stage 1 (Validate): resolve names.
	for _, name := range index {
		if !f.Has(name) {
			return nil, columnErrorf(opUnpivot, name, ErrColumnNotFound)
		}
	}
	if on == nil {
		for _, name := range f.Columns() {
			if !slices.Contains(index, name) {
				on = append(on, name)
			}
		}
	}
	if len(on) == 0 {
		return nil, frameErrorf(opUnpivot, ErrNothingToUnpivot)
	}
	for _, name := range []string{variableName, valueName} {
		if slices.Contains(index, name) {
			return nil, columnErrorf(opUnpivot, name, ErrDuplicateColumn)
		}
	}
	if variableName == valueName {
		return nil, columnErrorf(opUnpivot, valueName, ErrDuplicateColumn)
	}

	// Stage 2 (Prepare): value kind is the supertype of the stacked columns.
	values := make([]arrow.Array, len(on))
	kinds := make([]Kind, len(on))
	for i, name := range on {
		arr, err := f.Column(name)
		if err != nil {
			return nil, frameErrorf(opUnpivot, err)
		}
		values[i] = arr
		kinds[i], _ = KindOf(arr.DataType()) // checked by New
	}
	kind := Supertype(kinds[0], kinds[1:]...)

	// Stage 3 (Execute): repeat index rows once per value column.
	rows := f.NumRows()
	repeated := make([]int, 0, rows*len(on))
	for range on {
		for r := 0; r < rows; r++ {
			repeated = append(repeated, r)
		}
	}
	cols := make([]Column, 0, len(index)+2)
	for _, name := range index {
		arr, _ := f.Column(name)
		rep, err := take(arr, repeated)
		if err != nil {
			return nil, columnErrorf(opUnpivot, name, err)
		}
		cols = append(cols, Column{Name: name, Values: rep})
	}

	labels := array.NewStringBuilder(mem)
	defer labels.Release()
	labels.Reserve(len(repeated))
	casted := make([]arrow.Array, len(on))
	for i, name := range on {
		arr, err := Cast(values[i], kind)
		if err != nil {
			return nil, columnErrorf(opUnpivot, name, err)
		}
		casted[i] = arr
		for r := 0; r < rows; r++ {
			labels.Append(name)
		}
	}
	stacked, err := array.Concatenate(casted, mem)
	if err != nil {
		return nil, frameErrorf(opUnpivot, fmt.Errorf("stack: %w", err))
	}
	cols = append(cols,
		Column{Name: variableName, Values: labels.NewArray()},
		Column{Name: valueName, Values: stacked},
	)

	out, err := New(cols...)
	if err != nil {
		return nil, frameErrorf(opUnpivot, fmt.Errorf("assemble: %w", err))
	}

	return out, nil
}
