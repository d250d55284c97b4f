// SPDX-License-Identifier: MIT
// Package: polarbayes/posterior
//
// decode.go: reading InferenceData from YAML or JSON documents.
//
// Document shape:
//
//	groups:
//	  - name: posterior
//	    chains: [0, 1]            # optional, default 0..C-1
//	    draws: [0, 1, 2]          # optional, default 0..D-1
//	    coords:                   # optional per dim, default 0..N-1
//	      team: [Wales, France]
//	    variables:
//	      - name: atts
//	        dims: [team]
//	        dtype: float          # optional, inferred from the values
//	        values: [[[...]]]     # nested [chain][draw][dims...]
//
// Shapes are read off the nesting. JSON is accepted because the decoder is
// a YAML 1.2 parser.

package posterior

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polarbayes/frame"
)

// document is the on-disk form of InferenceData.
type document struct {
	Groups []groupDoc `yaml:"groups"`
}

type groupDoc struct {
	Name      string           `yaml:"name"`
	Chains    []int64          `yaml:"chains"`
	Draws     []int64          `yaml:"draws"`
	Coords    map[string][]any `yaml:"coords"`
	Variables []variableDoc    `yaml:"variables"`
}

type variableDoc struct {
	Name   string   `yaml:"name"`
	Dims   []string `yaml:"dims"`
	DType  string   `yaml:"dtype"`
	Values any      `yaml:"values"`
}

// unknownSize marks a shape entry not yet observed.
const unknownSize = -1

// Decode reads one document from r.
// Every failure wraps ErrDecode; validation failures also wrap the matching
// dataset sentinel (ErrShapeMismatch, ErrDuplicateCoord, ErrNullCoord, ...).
func Decode(r io.Reader) (*InferenceData, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, decodeErrorf("%v", err)
	}

	data := New()
	for i, g := range doc.Groups {
		ds, err := g.dataset()
		if err != nil {
			return nil, decodeErrorf("group %d (%q): %w", i, g.Name, err)
		}
		if err := data.AddGroup(g.Name, ds); err != nil {
			return nil, decodeErrorf("group %d: %w", i, err)
		}
	}

	return data, nil
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*InferenceData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, decodeErrorf("%v", err)
	}
	defer f.Close()

	return Decode(f)
}

// decodeErrorf formats a decode failure; %w arguments stay matchable.
func decodeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %w", ErrDecode, fmt.Errorf(format, args...))
}

// dataset builds the Dataset described by g.
func (g groupDoc) dataset() (*Dataset, error) {
	// Stage 1 (Prepare): flatten every variable and record its shape.
	flats := make([][]any, len(g.Variables))
	shapes := make([][]int, len(g.Variables))
	for i, v := range g.Variables {
		shape := make([]int, 2+len(v.Dims))
		for j := range shape {
			shape[j] = unknownSize
		}
		var flat []any
		if err := flatten(v.Values, shape, 0, &flat); err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		flats[i], shapes[i] = flat, shape
	}

	// Stage 2 (Validate): agree on chains, draws and dimension sizes.
	nc, nd := len(g.Chains), len(g.Draws)
	if g.Chains == nil {
		nc = unknownSize
	}
	if g.Draws == nil {
		nd = unknownSize
	}
	sizes := make(map[string]int)
	for dim, labels := range g.Coords {
		sizes[dim] = len(labels)
	}
	for i, v := range g.Variables {
		var err error
		if nc, err = agree("chain", nc, shapes[i][0]); err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		if nd, err = agree("draw", nd, shapes[i][1]); err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		for j, dim := range v.Dims {
			known, ok := sizes[dim]
			if !ok {
				known = unknownSize
			}
			if sizes[dim], err = agree(dim, known, shapes[i][2+j]); err != nil {
				return nil, fmt.Errorf("variable %q: %w", v.Name, err)
			}
		}
	}

	chains, draws := g.Chains, g.Draws
	if chains == nil {
		chains = Range(max(nc, 0))
	}
	if draws == nil {
		draws = Range(max(nd, 0))
	}
	ds, err := NewDataset(chains, draws)
	if err != nil {
		return nil, err
	}

	// Stage 3 (Execute): coordinates in name order, then variables.
	for _, dim := range slices.Sorted(maps.Keys(sizes)) {
		labels, err := coordLabels(g.Coords[dim], max(sizes[dim], 0))
		if err != nil {
			return nil, fmt.Errorf("coords %q: %w", dim, err)
		}
		if err := ds.SetCoords(dim, labels); err != nil {
			return nil, err
		}
	}
	for i, v := range g.Variables {
		kind, err := variableKind(v.DType, flats[i])
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		values, err := frame.FromValues(kind, flats[i])
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		if err := ds.AddVariable(v.Name, v.Dims, values); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// flatten appends the scalars of a nested value in row-major order while
// checking that every level has a consistent length.
func flatten(v any, shape []int, level int, out *[]any) error {
	if level == len(shape) {
		if _, ok := v.([]any); ok {
			return fmt.Errorf("nesting deeper than %d levels: %w", len(shape), ErrShapeMismatch)
		}
		*out = append(*out, v)
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		if v == nil && level == 0 {
			shape[0] = 0
			return nil
		}
		return fmt.Errorf("level %d is not a list: %w", level, ErrShapeMismatch)
	}
	if shape[level] == unknownSize {
		shape[level] = len(items)
	} else if shape[level] != len(items) {
		return fmt.Errorf("level %d has %d items, want %d: %w", level, len(items), shape[level], ErrShapeMismatch)
	}
	for _, item := range items {
		if err := flatten(item, shape, level+1, out); err != nil {
			return err
		}
	}

	return nil
}

// agree reconciles two observations of one axis size; unknownSize defers.
func agree(axis string, known, seen int) (int, error) {
	switch {
	case seen == unknownSize:
		return known, nil
	case known == unknownSize:
		return seen, nil
	case known != seen:
		return 0, fmt.Errorf("%s has %d entries, want %d: %w", axis, seen, known, ErrShapeMismatch)
	default:
		return known, nil
	}
}

// coordLabels builds dimension labels, defaulting to 0..n-1.
func coordLabels(raw []any, n int) (arrow.Array, error) {
	if raw == nil {
		return frame.Int64s(Range(n)...), nil
	}
	kind, err := frame.InferKind(raw)
	if err != nil {
		return nil, err
	}
	if kind == frame.KindUnknown {
		return nil, fmt.Errorf("labels are all null: %w", ErrNullCoord)
	}

	return frame.FromValues(kind, raw)
}

// variableKind resolves the declared dtype or infers it; all-null values
// default to float.
func variableKind(dtype string, flat []any) (frame.Kind, error) {
	if dtype != "" {
		return frame.ParseKind(dtype)
	}
	kind, err := frame.InferKind(flat)
	if err != nil {
		return frame.KindUnknown, err
	}
	if kind == frame.KindUnknown {
		return frame.KindFloat, nil
	}

	return kind, nil
}
