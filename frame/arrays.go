// SPDX-License-Identifier: MIT
// Package: polarbayes/frame
//
// arrays.go: Arrow array constructors, cell access, widening casts and row
// take, the last two on arrow compute kernels.
//
// Cell values cross the package boundary as canonical Go values:
// nil (null), bool, int64, float64 or string. Normalize converts the other
// built-in numeric types into that set.

package frame

import (
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/compute"
	"github.com/apache/arrow-go/v18/arrow/compute/exec"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// mem is the allocator behind every array built by this package.
var mem = memory.DefaultAllocator

// kernelCtx routes compute kernel allocations through mem.
var kernelCtx = exec.WithAllocator(context.Background(), mem)

// Int64s builds a non-null Int64 array.
func Int64s(vals ...int64) arrow.Array {
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)

	return b.NewArray()
}

// Float64s builds a non-null Float64 array.
func Float64s(vals ...float64) arrow.Array {
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)

	return b.NewArray()
}

// Strings builds a non-null String array.
func Strings(vals ...string) arrow.Array {
	b := array.NewStringBuilder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)

	return b.NewArray()
}

// Bools builds a non-null Boolean array.
func Bools(vals ...bool) arrow.Array {
	b := array.NewBooleanBuilder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)

	return b.NewArray()
}

// NullArray returns n nulls typed as kind.
func NullArray(kind Kind, n int) arrow.Array {
	b := array.NewBuilder(mem, kind.DataType())
	defer b.Release()
	b.Reserve(n)
	for i := 0; i < n; i++ {
		b.AppendNull()
	}

	return b.NewArray()
}

// FromValues builds an array of the given kind from canonical or built-in Go
// values; nil entries become nulls. Values narrower than kind are widened
// (e.g. int → float); anything else fails with ErrCast.
//
// Values are grouped by kind, each group is widened with Cast, and a single
// take restores the original positions.
func FromValues(kind Kind, vals []any) (arrow.Array, error) {
	if rankOf(kind) < 0 {
		return nil, fmt.Errorf("kind %s: %w", kind, ErrUnsupportedType)
	}

	var g groups
	slots := make([]slot, len(vals))
	for i, v := range vals {
		cv, k, err := Normalize(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		if cv == nil {
			continue
		}
		if k != kind && !canWiden(k, kind) {
			return nil, fmt.Errorf("value %d: %v (%s) to %s: %w", i, cv, k, kind, ErrCast)
		}
		slots[i] = slot{kind: k, pos: g.add(cv), valid: true}
	}
	if g.empty() {
		return NullArray(kind, len(vals)), nil
	}

	parts, offsets, err := g.arrays(kind)
	if err != nil {
		return nil, err
	}
	joined, err := array.Concatenate(parts, mem)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}
	defer joined.Release()

	ib := array.NewInt64Builder(mem)
	defer ib.Release()
	ib.Reserve(len(slots))
	for _, s := range slots {
		if !s.valid {
			ib.AppendNull()
			continue
		}
		ib.Append(offsets[s.kind] + s.pos)
	}
	idx := ib.NewArray()
	defer idx.Release()

	return compute.TakeArrayOpts(kernelCtx, joined, idx, *compute.DefaultTakeOptions())
}

// slot locates one non-null value inside its kind group.
type slot struct {
	kind  Kind
	pos   int64
	valid bool
}

// groups collects canonical values by kind.
type groups struct {
	bools   []bool
	ints    []int64
	floats  []float64
	strings []string
}

// add appends a canonical non-nil value and returns its position in its group.
func (g *groups) add(v any) int64 {
	switch x := v.(type) {
	case bool:
		g.bools = append(g.bools, x)
		return int64(len(g.bools) - 1)
	case int64:
		g.ints = append(g.ints, x)
		return int64(len(g.ints) - 1)
	case float64:
		g.floats = append(g.floats, x)
		return int64(len(g.floats) - 1)
	default:
		g.strings = append(g.strings, v.(string))
		return int64(len(g.strings) - 1)
	}
}

func (g *groups) empty() bool {
	return len(g.bools)+len(g.ints)+len(g.floats)+len(g.strings) == 0
}

// arrays returns the non-empty groups cast to kind, in rank order, with the
// offset of each group inside their concatenation.
func (g *groups) arrays(kind Kind) ([]arrow.Array, map[Kind]int64, error) {
	var (
		parts   []arrow.Array
		offsets = make(map[Kind]int64, 4)
		next    int64
	)
	for _, part := range []struct {
		kind Kind
		n    int
		arr  func() arrow.Array
	}{
		{KindBool, len(g.bools), func() arrow.Array { return Bools(g.bools...) }},
		{KindInt, len(g.ints), func() arrow.Array { return Int64s(g.ints...) }},
		{KindFloat, len(g.floats), func() arrow.Array { return Float64s(g.floats...) }},
		{KindString, len(g.strings), func() arrow.Array { return Strings(g.strings...) }},
	} {
		if part.n == 0 {
			continue
		}
		casted, err := Cast(part.arr(), kind)
		if err != nil {
			return nil, nil, err
		}
		offsets[part.kind] = next
		next += int64(part.n)
		parts = append(parts, casted)
	}

	return parts, offsets, nil
}

// InferKind returns the supertype of the non-nil values, or KindUnknown
// when every value is nil.
func InferKind(vals []any) (Kind, error) {
	kind := KindUnknown
	for i, v := range vals {
		_, k, err := Normalize(v)
		if err != nil {
			return KindUnknown, fmt.Errorf("value %d: %w", i, err)
		}
		if k == KindUnknown {
			continue
		}
		kind = Supertype(kind, k)
	}

	return kind, nil
}

// Cell returns the canonical Go value at row i of arr (nil for nulls).
// Unsupported array types also yield nil.
func Cell(arr arrow.Array, i int) any {
	if arr.IsNull(i) {
		return nil
	}
	switch a := arr.(type) {
	case *array.Boolean:
		return a.Value(i)
	case *array.Int64:
		return a.Value(i)
	case *array.Float64:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	default:
		return nil
	}
}

// Normalize converts v into its canonical form and reports its kind.
// nil yields (nil, KindUnknown, nil).
func Normalize(v any) (any, Kind, error) {
	switch x := v.(type) {
	case nil:
		return nil, KindUnknown, nil
	case bool:
		return x, KindBool, nil
	case int:
		return int64(x), KindInt, nil
	case int8:
		return int64(x), KindInt, nil
	case int16:
		return int64(x), KindInt, nil
	case int32:
		return int64(x), KindInt, nil
	case int64:
		return x, KindInt, nil
	case uint8:
		return int64(x), KindInt, nil
	case uint16:
		return int64(x), KindInt, nil
	case uint32:
		return int64(x), KindInt, nil
	case float32:
		return float64(x), KindFloat, nil
	case float64:
		return x, KindFloat, nil
	case string:
		return x, KindString, nil
	default:
		return nil, KindUnknown, fmt.Errorf("value of type %T: %w", v, ErrUnsupportedType)
	}
}

// Cast returns arr widened to kind. Arrays already of that kind are returned
// as is; narrowing casts fail with ErrCast. Floats render in their shortest
// round-trip form when widened to String.
func Cast(arr arrow.Array, kind Kind) (arrow.Array, error) {
	from, err := KindOf(arr.DataType())
	if err != nil {
		return nil, err
	}
	if from == kind {
		return arr, nil
	}
	if !canWiden(from, kind) {
		return nil, fmt.Errorf("%s to %s: %w", from, kind, ErrCast)
	}

	out, err := compute.CastToType(kernelCtx, arr, kind.DataType())
	if err != nil {
		return nil, fmt.Errorf("%s to %s: %v: %w", from, kind, err, ErrCast)
	}

	return out, nil
}

// positions converts row numbers into an Int64 index array for take kernels.
func positions(rows []int) arrow.Array {
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.Reserve(len(rows))
	for _, r := range rows {
		b.Append(int64(r))
	}

	return b.NewArray()
}

// take copies the given rows of arr into a new array of the same type.
func take(arr arrow.Array, rows []int) (arrow.Array, error) {
	idx := positions(rows)
	defer idx.Release()

	out, err := compute.TakeArrayOpts(kernelCtx, arr, idx, *compute.DefaultTakeOptions())
	if err != nil {
		return nil, fmt.Errorf("take %d rows: %w", len(rows), err)
	}

	return out, nil
}

// Pick returns the values of arr at the given positions, in order.
// Positions may repeat; out-of-range positions fail with ErrOutOfRange.
func Pick(arr arrow.Array, rows []int) (arrow.Array, error) {
	n := arr.Len()
	for _, r := range rows {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("position %d of %d: %w", r, n, ErrOutOfRange)
		}
	}

	return take(arr, rows)
}
