// SPDX-License-Identifier: MIT
// Package: polarbayes/spread
//
// spread.go: wide extraction with ordered index columns.
//
// Contract:
//   • The returned index always contains chain and draw plus exactly the
//     dimensions of the selected variables.
//   • Re-ordering the returned index with schema.OrderIndexColumnNames is a
//     no-op.

package spread

import (
	"slices"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/posterior"
	"github.com/katalvlaran/polarbayes/schema"
)

// Draws returns the wide frame of the selected draws.
func Draws(data *posterior.InferenceData, opts ...posterior.Option) (*frame.Frame, error) {
	f, _, err := DrawsAndIndexColumns(data, opts...)

	return f, err
}

// DrawsAndIndexColumns returns the wide frame of the selected draws together
// with its index column names in policy order.
// Errors from posterior.Prepare are returned unchanged.
func DrawsAndIndexColumns(data *posterior.InferenceData, opts ...posterior.Option) (*frame.Frame, []string, error) {
	ext, err := posterior.Prepare(data, opts...)
	if err != nil {
		return nil, nil, err
	}

	return FromExtraction(ext)
}

// FromExtraction materializes a prepared extraction: index columns in policy
// order, then the variable columns in their extraction order.
func FromExtraction(ext *posterior.Extraction) (*frame.Frame, []string, error) {
	wide, index, err := ext.Frame()
	if err != nil {
		return nil, nil, err
	}

	ordered := schema.OrderIndexColumnNames(index)
	cols := append(slices.Clone(ordered), wide.Exclude(ordered...).Columns()...)
	out, err := wide.Select(cols...)
	if err != nil {
		return nil, nil, err
	}

	return out, ordered, nil
}
