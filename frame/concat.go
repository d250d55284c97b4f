// SPDX-License-Identifier: MIT
// Package: polarbayes/frame
//
// concat.go: strict vertical concatenation.
//
// Concat never reconciles schemas on its own: callers align column names,
// order and kinds first (WithNullColumn, CastColumn, Select) so that null
// filling and widening stay explicit at the call site.

package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Concat stacks frames vertically. Every frame must have exactly the column
// names, order and kinds of the first one (ErrSchemaMismatch).
// With no frames it returns an empty frame; a single frame is returned as is.
func Concat(frames ...*Frame) (*Frame, error) {
	switch len(frames) {
	case 0:
		return New()
	case 1:
		return frames[0], nil
	}

	first := frames[0]
	names := first.Columns()
	for fi, g := range frames[1:] {
		if err := sameSchema(first, g); err != nil {
			return nil, frameErrorf(opConcat, fmt.Errorf("frame %d: %w", fi+1, err))
		}
	}

	cols := make([]Column, len(names))
	for ci, name := range names {
		parts := make([]arrow.Array, len(frames))
		for fi, g := range frames {
			parts[fi] = g.rec.Column(ci)
		}
		joined, err := array.Concatenate(parts, mem)
		if err != nil {
			return nil, columnErrorf(opConcat, name, err)
		}
		cols[ci] = Column{Name: name, Values: joined}
	}

	return first.rebuild(opConcat, cols)
}

// sameSchema checks names, order and types column by column.
func sameSchema(a, b *Frame) error {
	if a.NumCols() != b.NumCols() {
		return fmt.Errorf("%d columns, want %d: %w", b.NumCols(), a.NumCols(), ErrSchemaMismatch)
	}
	for i := 0; i < a.NumCols(); i++ {
		fa, fb := a.rec.Schema().Field(i), b.rec.Schema().Field(i)
		if fa.Name != fb.Name {
			return fmt.Errorf("column %d is %q, want %q: %w", i, fb.Name, fa.Name, ErrSchemaMismatch)
		}
		if !arrow.TypeEqual(fa.Type, fb.Type) {
			return fmt.Errorf("column %q is %s, want %s: %w", fa.Name, fb.Type, fa.Type, ErrSchemaMismatch)
		}
	}

	return nil
}
