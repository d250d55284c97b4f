// SPDX-License-Identifier: MIT
// Package: polarbayes/posterior
//
// dataset.go: building and inspecting a Dataset.
//
// Validation happens on insertion, so extraction can index values without
// further checks:
//   • chain, draw and coordinate labels are unique within their axis;
//   • a variable's dims all have coordinates and appear once;
//   • a variable's value count equals chains·draws·Π|dim|.

package posterior

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/schema"
)

// Range returns the ids 0..n-1, the default chain / draw labelling.
func Range(n int) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i)
	}

	return ids
}

// NewDataset creates an empty dataset over the given chain and draw ids.
// Ids must be unique within each axis (ErrDuplicateCoord).
func NewDataset(chains, draws []int64) (*Dataset, error) {
	if err := uniqueIDs(schema.ChainName, chains); err != nil {
		return nil, posteriorErrorf("NewDataset", err)
	}
	if err := uniqueIDs(schema.DrawName, draws); err != nil {
		return nil, posteriorErrorf("NewDataset", err)
	}

	return &Dataset{
		chains: slices.Clone(chains),
		draws:  slices.Clone(draws),
		coords: make(map[string]arrow.Array),
		byName: make(map[string]int),
	}, nil
}

// uniqueIDs rejects repeated ids on one axis.
func uniqueIDs(axis string, ids []int64) error {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s %d: %w", axis, id, ErrDuplicateCoord)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// isReserved reports names that can never be a dimension or variable.
func isReserved(name string) bool {
	return name == "" || name == schema.ChainName || name == schema.DrawName
}

// SetCoords registers (or replaces) the coordinate labels of dim.
// Replacing is refused when a variable already depends on a different size.
func (d *Dataset) SetCoords(dim string, labels arrow.Array) error {
	const op = "SetCoords"
	if isReserved(dim) {
		return posteriorErrorf(op, quoted(dim, ErrReservedName))
	}
	if _, isVar := d.byName[dim]; isVar {
		return posteriorErrorf(op, fmt.Errorf("dim %q names a variable: %w", dim, ErrDuplicateVariable))
	}
	if _, err := frame.KindOf(labels.DataType()); err != nil {
		return posteriorErrorf(op, quoted(dim, err))
	}
	if labels.NullN() > 0 {
		return posteriorErrorf(op, fmt.Errorf("%q: null label: %w", dim, ErrNullCoord))
	}
	seen := make(map[any]struct{}, labels.Len())
	for i := 0; i < labels.Len(); i++ {
		v := frame.Cell(labels, i)
		if _, dup := seen[v]; dup {
			return posteriorErrorf(op, fmt.Errorf("%q label %v: %w", dim, v, ErrDuplicateCoord))
		}
		seen[v] = struct{}{}
	}
	if old, ok := d.coords[dim]; ok {
		if old.Len() != labels.Len() && d.dimInUse(dim) {
			return posteriorErrorf(op, fmt.Errorf("%q has %d labels in use, got %d: %w",
				dim, old.Len(), labels.Len(), ErrShapeMismatch))
		}
	} else {
		d.dimOrder = append(d.dimOrder, dim)
	}
	d.coords[dim] = labels

	return nil
}

// dimInUse reports whether any variable varies over dim.
func (d *Dataset) dimInUse(dim string) bool {
	for _, v := range d.vars {
		if slices.Contains(v.dims, dim) {
			return true
		}
	}

	return false
}

// AddVariable appends a variable varying over (chain, draw, dims...).
//
// Errors:
//   - ErrReservedName for "", "chain", "draw" as name or dim.
//   - ErrDuplicateVariable if name exists as a variable or a dimension.
//   - ErrUnknownDim if a dim has no coordinates; ErrShapeMismatch on a repeated
//     dim or a wrong value count.
//   - frame.ErrUnsupportedType for unsupported value arrays.
func (d *Dataset) AddVariable(name string, dims []string, values arrow.Array) error {
	const op = "AddVariable"
	if isReserved(name) {
		return posteriorErrorf(op, quoted(name, ErrReservedName))
	}
	if _, dup := d.byName[name]; dup {
		return posteriorErrorf(op, quoted(name, ErrDuplicateVariable))
	}
	if _, isDim := d.coords[name]; isDim {
		return posteriorErrorf(op, fmt.Errorf("%q names a dimension: %w", name, ErrDuplicateVariable))
	}
	kind, err := frame.KindOf(values.DataType())
	if err != nil {
		return posteriorErrorf(op, quoted(name, err))
	}

	want := len(d.chains) * len(d.draws)
	for i, dim := range dims {
		if isReserved(dim) {
			return posteriorErrorf(op, fmt.Errorf("%q dim %q: %w", name, dim, ErrReservedName))
		}
		if slices.Contains(dims[:i], dim) {
			return posteriorErrorf(op, fmt.Errorf("%q repeats dim %q: %w", name, dim, ErrShapeMismatch))
		}
		labels, ok := d.coords[dim]
		if !ok {
			return posteriorErrorf(op, fmt.Errorf("%q dim %q: %w", name, dim, ErrUnknownDim))
		}
		want *= labels.Len()
	}
	if values.Len() != want {
		return posteriorErrorf(op, fmt.Errorf("%q has %d values, want %d: %w",
			name, values.Len(), want, ErrShapeMismatch))
	}

	d.byName[name] = len(d.vars)
	d.vars = append(d.vars, &Variable{name: name, dims: slices.Clone(dims), kind: kind, values: values})

	return nil
}

// Chains returns the chain ids.
func (d *Dataset) Chains() []int64 { return slices.Clone(d.chains) }

// Draws returns the draw ids.
func (d *Dataset) Draws() []int64 { return slices.Clone(d.draws) }

// Dims returns the dimensions with coordinates, in registration order.
func (d *Dataset) Dims() []string { return slices.Clone(d.dimOrder) }

// Coords returns the labels of dim.
func (d *Dataset) Coords(dim string) (arrow.Array, bool) {
	labels, ok := d.coords[dim]
	return labels, ok
}

// Variables returns the variable names in insertion order.
func (d *Dataset) Variables() []string {
	names := make([]string, len(d.vars))
	for i, v := range d.vars {
		names[i] = v.name
	}

	return names
}

// Variable returns the named variable.
func (d *Dataset) Variable(name string) (*Variable, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}

	return d.vars[i], true
}

// dimSize returns the number of labels of dim (0 when unknown).
func (d *Dataset) dimSize(dim string) int {
	if labels, ok := d.coords[dim]; ok {
		return labels.Len()
	}

	return 0
}
