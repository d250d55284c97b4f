// SPDX-License-Identifier: MIT
// Package: polarbayes/posterior
//
// types.go: InferenceData, Dataset and Variable.
//
// Layout:
//   • A Variable with dims [d1 .. dk] stores len(chains)·len(draws)·|d1|·…·|dk|
//     values, row-major over (chain, draw, d1, …, dk).
//   • Coordinates belong to the Dataset, so every variable varying over "team"
//     shares the same team labels.

package posterior

import (
	"maps"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/katalvlaran/polarbayes/frame"
)

// InferenceData is a set of named groups ("posterior", "prior", ...).
type InferenceData struct {
	groups map[string]*Dataset
}

// Dataset holds the samples of one group.
type Dataset struct {
	chains   []int64
	draws    []int64
	coords   map[string]arrow.Array
	dimOrder []string
	vars     []*Variable
	byName   map[string]int
}

// Variable is one sampled quantity.
type Variable struct {
	name   string
	dims   []string
	kind   frame.Kind
	values arrow.Array
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Dims returns the variable's dimensions, excluding chain and draw.
func (v *Variable) Dims() []string { return slices.Clone(v.dims) }

// Kind returns the value kind.
func (v *Variable) Kind() frame.Kind { return v.kind }

// Values returns the flat, row-major value array.
func (v *Variable) Values() arrow.Array { return v.values }

// New returns an empty InferenceData.
func New() *InferenceData {
	return &InferenceData{groups: make(map[string]*Dataset)}
}

// AddGroup registers ds under name.
func (id *InferenceData) AddGroup(name string, ds *Dataset) error {
	if ds == nil {
		return posteriorErrorf("AddGroup", ErrNilData)
	}
	if name == "" {
		return posteriorErrorf("AddGroup", ErrReservedName)
	}
	if _, dup := id.groups[name]; dup {
		return posteriorErrorf("AddGroup", quoted(name, ErrDuplicateGroup))
	}
	id.groups[name] = ds

	return nil
}

// Group returns the dataset registered under name.
func (id *InferenceData) Group(name string) (*Dataset, error) {
	ds, ok := id.groups[name]
	if !ok {
		return nil, quoted(name, ErrUnknownGroup)
	}

	return ds, nil
}

// Groups returns the group names in ascending order.
func (id *InferenceData) Groups() []string {
	return slices.Sorted(maps.Keys(id.groups))
}
