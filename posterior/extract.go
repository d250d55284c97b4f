// SPDX-License-Identifier: MIT
// Package: polarbayes/posterior
//
// extract.go: resolving and materializing an extraction.
//
// Row layout of Extraction.Frame:
//   • outer loop over the selected samples (chain-major, or the sub-sample
//     order);
//   • inner loop over the cartesian product of the union dimensions, in
//     Dims() order, last dimension fastest.
// A variable lacking some union dimension is broadcast along it.
//
// Determinism:
//   • Everything but the sub-sample permutation is a pure function of the
//     dataset and the options.

package posterior

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/schema"
)

// Extraction is a resolved selection of variables and samples of one group.
type Extraction struct {
	ds       *Dataset
	group    string
	combined bool
	vars     []string
	dims     []string
	samples  []sample
}

// Prepare resolves the group, the variable selection and the samples.
//
// Errors: ErrNilData, ErrUnknownGroup, ErrUnknownVariable, ErrInvalidFilter,
// ErrNoVariables, ErrSamplesNeedCombined, ErrTooManySamples.
func Prepare(data *InferenceData, opts ...Option) (*Extraction, error) {
	const op = "Prepare"
	if data == nil {
		return nil, posteriorErrorf(op, ErrNilData)
	}
	cfg := newExtractConfig(opts...)

	// Stage 1 (Validate): group and variables.
	ds, err := data.Group(cfg.group)
	if err != nil {
		return nil, posteriorErrorf(op, err)
	}
	vars, err := selectVariables(ds.Variables(), cfg.varNames, cfg.filter)
	if err != nil {
		return nil, posteriorErrorf(op, err)
	}

	// Stage 2 (Prepare): samples.
	samples, err := pickSamples(ds, cfg)
	if err != nil {
		return nil, posteriorErrorf(op, err)
	}

	return newExtraction(ds, cfg.group, cfg.combined, vars, samples), nil
}

// newExtraction computes the dimension union of vars.
func newExtraction(ds *Dataset, group string, combined bool, vars []string, samples []sample) *Extraction {
	var dims []string
	for _, name := range vars {
		v, _ := ds.Variable(name)
		for _, d := range v.dims {
			if !slices.Contains(dims, d) {
				dims = append(dims, d)
			}
		}
	}

	return &Extraction{ds: ds, group: group, combined: combined, vars: vars, dims: dims, samples: samples}
}

// Group returns the extracted group name.
func (e *Extraction) Group() string { return e.group }

// Combined reports whether chains were combined.
func (e *Extraction) Combined() bool { return e.combined }

// Variables returns the selected variable names in selection order.
func (e *Extraction) Variables() []string { return slices.Clone(e.vars) }

// VariableDims returns the dimensions of a selected variable.
func (e *Extraction) VariableDims(name string) ([]string, error) {
	v, err := e.variable(name)
	if err != nil {
		return nil, err
	}

	return v.Dims(), nil
}

// Kind returns the value kind of a selected variable.
func (e *Extraction) Kind(name string) (frame.Kind, error) {
	v, err := e.variable(name)
	if err != nil {
		return frame.KindUnknown, err
	}

	return v.kind, nil
}

// Kinds returns the value kinds of the selected variables, aligned with
// Variables().
func (e *Extraction) Kinds() []frame.Kind {
	kinds := make([]frame.Kind, len(e.vars))
	for i, name := range e.vars {
		v, _ := e.ds.Variable(name)
		kinds[i] = v.kind
	}

	return kinds
}

// Dims returns the union of the selected variables' dimensions, in order of
// first appearance.
func (e *Extraction) Dims() []string { return slices.Clone(e.dims) }

// DimKind returns the kind of dim's coordinate labels.
func (e *Extraction) DimKind(dim string) (frame.Kind, error) {
	labels, ok := e.ds.Coords(dim)
	if !ok {
		return frame.KindUnknown, quoted(dim, ErrUnknownDim)
	}

	return frame.KindOf(labels.DataType())
}

// NumSamples returns the number of (chain, draw) samples covered.
func (e *Extraction) NumSamples() int { return len(e.samples) }

// IndexColumns returns the index column names in extraction order: the
// dimensions followed by chain and draw when chains are combined, chain and
// draw followed by the dimensions otherwise.
func (e *Extraction) IndexColumns() []string {
	if e.combined {
		return append(slices.Clone(e.dims), schema.ChainName, schema.DrawName)
	}

	return append([]string{schema.ChainName, schema.DrawName}, e.dims...)
}

// Subset narrows the extraction to names, keeping the same samples.
// Every name must be selected already (ErrUnknownVariable).
func (e *Extraction) Subset(names ...string) (*Extraction, error) {
	if len(names) == 0 {
		return nil, posteriorErrorf("Subset", ErrNoVariables)
	}
	for _, n := range names {
		if !slices.Contains(e.vars, n) {
			return nil, posteriorErrorf("Subset", quoted(n, ErrUnknownVariable))
		}
	}

	return newExtraction(e.ds, e.group, e.combined, slices.Clone(names), e.samples), nil
}

// Frame materializes the extraction as a wide frame: the index columns in
// IndexColumns order, then one column per variable. The index column names
// are returned alongside.
func (e *Extraction) Frame() (*frame.Frame, []string, error) {
	const op = "Frame"

	// Stage 1 (Prepare): per-row sample and dimension positions.
	sizes := make([]int, len(e.dims))
	cells := 1
	for i, d := range e.dims {
		sizes[i] = e.ds.dimSize(d)
		cells *= sizes[i]
	}
	rows := len(e.samples) * cells
	chainPos := make([]int, 0, rows)
	drawPos := make([]int, 0, rows)
	dimPos := make([][]int, len(e.dims))
	for i := range dimPos {
		dimPos[i] = make([]int, 0, rows)
	}
	odo := make([]int, len(e.dims))
	for _, s := range e.samples {
		clear(odo)
		for c := 0; c < cells; c++ {
			chainPos = append(chainPos, s.chain)
			drawPos = append(drawPos, s.draw)
			for i := range odo {
				dimPos[i] = append(dimPos[i], odo[i])
			}
			advance(odo, sizes)
		}
	}

	// Stage 2 (Execute): index columns.
	index := make(map[string]frame.Column, len(e.dims)+2)
	index[schema.ChainName] = frame.Column{Name: schema.ChainName, Values: labelsAt(e.ds.chains, chainPos)}
	index[schema.DrawName] = frame.Column{Name: schema.DrawName, Values: labelsAt(e.ds.draws, drawPos)}
	for i, d := range e.dims {
		labels, _ := e.ds.Coords(d)
		arr, err := frame.Pick(labels, dimPos[i])
		if err != nil {
			return nil, nil, posteriorErrorf(op, quoted(d, err))
		}
		index[d] = frame.Column{Name: d, Values: arr}
	}
	names := e.IndexColumns()
	cols := make([]frame.Column, 0, len(names)+len(e.vars))
	for _, n := range names {
		cols = append(cols, index[n])
	}

	// Stage 3 (Execute): variable columns, broadcast over missing dims.
	nd := len(e.ds.draws)
	for _, name := range e.vars {
		v, _ := e.ds.Variable(name)
		flat := make([]int, rows)
		for r := range flat {
			off := chainPos[r]*nd + drawPos[r]
			for _, d := range v.dims {
				i := slices.Index(e.dims, d)
				off = off*sizes[i] + dimPos[i][r]
			}
			flat[r] = off
		}
		arr, err := frame.Pick(v.values, flat)
		if err != nil {
			return nil, nil, posteriorErrorf(op, quoted(name, err))
		}
		cols = append(cols, frame.Column{Name: name, Values: arr})
	}

	f, err := frame.New(cols...)
	if err != nil {
		return nil, nil, posteriorErrorf(op, err)
	}

	return f, names, nil
}

// Extract is Prepare followed by Frame.
func Extract(data *InferenceData, opts ...Option) (*frame.Frame, []string, error) {
	ext, err := Prepare(data, opts...)
	if err != nil {
		return nil, nil, err
	}

	return ext.Frame()
}

// variable returns a selected variable.
func (e *Extraction) variable(name string) (*Variable, error) {
	if !slices.Contains(e.vars, name) {
		return nil, quoted(name, ErrUnknownVariable)
	}
	v, _ := e.ds.Variable(name)

	return v, nil
}

// advance steps a row-major odometer; it wraps to all zeros after the last cell.
func advance(odo, sizes []int) {
	for i := len(odo) - 1; i >= 0; i-- {
		odo[i]++
		if odo[i] < sizes[i] {
			return
		}
		odo[i] = 0
	}
}

// labelsAt returns ids[pos[r]] for every row r.
func labelsAt(ids []int64, pos []int) arrow.Array {
	out := make([]int64, len(pos))
	for r, p := range pos {
		out[r] = ids[p]
	}

	return frame.Int64s(out...)
}

// String describes the extraction for logs.
func (e *Extraction) String() string {
	return fmt.Sprintf("group=%s vars=%v dims=%v samples=%d combined=%t",
		e.group, e.vars, e.dims, len(e.samples), e.combined)
}
