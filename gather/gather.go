// SPDX-License-Identifier: MIT
// Package: polarbayes/gather
//
// gather.go: the tidy union of differently shaped variables.
//
// Algorithm (Draws):
//  1. Prepare the extraction once, so every variable shares the same samples.
//  2. Order the index (chain, draw, union of dimensions) and reject label or
//     value names that collide with it.
//  3. Unify the value kind across the selected variables.
//  4. Per variable: spread over its own dimensions, unpivot, widen the value
//     column, add a typed null column for each union dimension it lacks, and
//     select the final column order.
//  5. Concatenate the per-variable frames, which now share one schema.
//
// Rows come variable by variable in selection order; within a variable, in
// spread order (samples outer, dimensions inner).

package gather

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/posterior"
	"github.com/katalvlaran/polarbayes/schema"
	"github.com/katalvlaran/polarbayes/spread"
)

// Draws returns the tidy frame of the selected draws.
//
// Errors:
//   - posterior errors (unknown group / variable, bad filter, ...) unchanged.
//   - ErrNameCollision if the label or value name is an index column, or if
//     both names are equal.
func Draws(data *posterior.InferenceData, opts ...Option) (*frame.Frame, error) {
	cfg := newConfig(opts...)

	// Stage 1 (Prepare): one extraction for every variable.
	ext, err := posterior.Prepare(data, cfg.extract...)
	if err != nil {
		return nil, err
	}

	// Stage 2 (Validate): output names.
	index := schema.OrderIndexColumnNames(ext.IndexColumns())
	if err := assertNotInIndexColumns("variable_name", cfg.variableName, index); err != nil {
		return nil, err
	}
	if err := assertNotInIndexColumns("value_name", cfg.valueName, index); err != nil {
		return nil, err
	}
	if cfg.variableName == cfg.valueName {
		return nil, fmt.Errorf("specified value_name='%s' equals variable_name: %w",
			cfg.valueName, ErrNameCollision)
	}
	final := append(slices.Clone(index), cfg.variableName, cfg.valueName)

	// Stage 3 (Prepare): common value kind.
	kinds := ext.Kinds()
	valueKind := frame.Supertype(kinds[0], kinds[1:]...)

	// Stage 4 (Execute): one long frame per variable, padded to the union.
	vars := ext.Variables()
	parts := make([]*frame.Frame, 0, len(vars))
	for _, name := range vars {
		part, err := gatherOne(ext, name, index, valueKind, cfg)
		if err != nil {
			return nil, fmt.Errorf("gather %q: %w", name, err)
		}
		part, err = part.Select(final...)
		if err != nil {
			return nil, fmt.Errorf("gather %q: %w", name, err)
		}
		parts = append(parts, part)
	}

	// Stage 5 (Execute): stack.
	return frame.Concat(parts...)
}

// gatherOne unpivots a single variable and pads the union dimensions it
// does not vary over with typed nulls.
func gatherOne(ext *posterior.Extraction, name string, index []string, valueKind frame.Kind, cfg config) (*frame.Frame, error) {
	sub, err := ext.Subset(name)
	if err != nil {
		return nil, err
	}
	wide, own, err := spread.FromExtraction(sub)
	if err != nil {
		return nil, err
	}
	long, err := wide.Unpivot(own, []string{name}, cfg.variableName, cfg.valueName)
	if err != nil {
		return nil, err
	}
	if long, err = long.CastColumn(cfg.valueName, valueKind); err != nil {
		return nil, err
	}

	for _, dim := range index {
		if slices.Contains(own, dim) {
			continue
		}
		kind, err := ext.DimKind(dim)
		if err != nil {
			return nil, err
		}
		if long, err = long.WithNullColumn(dim, kind); err != nil {
			return nil, err
		}
	}

	return long, nil
}

// Variables unpivots every non-index column of f into label / value pairs.
// A nil index means chain and draw. Only the naming options apply.
func Variables(f *frame.Frame, index []string, opts ...Option) (*frame.Frame, error) {
	cfg := newConfig(opts...)
	if index == nil {
		index = schema.SampleColumns()
	}

	return f.Unpivot(index, nil, cfg.variableName, cfg.valueName)
}
