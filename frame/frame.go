// SPDX-License-Identifier: MIT
// Package: polarbayes/frame
//
// frame.go: the Frame type and its relational primitives.
//
// Invariants (checked by New / FromRecord, preserved by every method):
//   • column names are unique;
//   • every column has NumRows values;
//   • every column is Boolean, Int64, Float64 or String and nullable.
//
// Determinism:
//   • Column order is always explicit; rows keep their relative order unless
//     an operation (Take) states otherwise.

package frame

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/compute"
)

// Column is a named array used to assemble a Frame.
type Column struct {
	Name   string
	Values arrow.Array
}

// Frame is an immutable table backed by an Arrow record.
type Frame struct {
	rec   arrow.Record
	index map[string]int // column name → position
}

// New assembles a frame from columns, in the given order.
// With no columns the frame has zero rows.
//
// Errors:
//   - ErrDuplicateColumn if two columns share a name.
//   - ErrLengthMismatch if the columns differ in length.
//   - ErrUnsupportedType for arrays outside the four kinds.
func New(cols ...Column) (*Frame, error) {
	fields := make([]arrow.Field, len(cols))
	arrs := make([]arrow.Array, len(cols))
	rows := 0
	for i, c := range cols {
		if _, err := KindOf(c.Values.DataType()); err != nil {
			return nil, columnErrorf(opNew, c.Name, err)
		}
		if i == 0 {
			rows = c.Values.Len()
		} else if c.Values.Len() != rows {
			return nil, columnErrorf(opNew, c.Name,
				fmt.Errorf("%d rows, want %d: %w", c.Values.Len(), rows, ErrLengthMismatch))
		}
		fields[i] = arrow.Field{Name: c.Name, Type: c.Values.DataType(), Nullable: true}
		arrs[i] = c.Values
	}
	index, err := indexNames(fields)
	if err != nil {
		return nil, frameErrorf(opNew, err)
	}
	rec := array.NewRecord(arrow.NewSchema(fields, nil), arrs, int64(rows))

	return &Frame{rec: rec, index: index}, nil
}

// FromRecord wraps an existing Arrow record after checking the invariants.
func FromRecord(rec arrow.Record) (*Frame, error) {
	fields := rec.Schema().Fields()
	for _, f := range fields {
		if _, err := KindOf(f.Type); err != nil {
			return nil, columnErrorf(opFromRecord, f.Name, err)
		}
	}
	index, err := indexNames(fields)
	if err != nil {
		return nil, frameErrorf(opFromRecord, err)
	}

	return &Frame{rec: rec, index: index}, nil
}

// indexNames maps names to positions, rejecting duplicates.
func indexNames(fields []arrow.Field) (map[string]int, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("%q: %w", f.Name, ErrDuplicateColumn)
		}
		index[f.Name] = i
	}

	return index, nil
}

// Record exposes the underlying Arrow record. Callers must not mutate it.
func (f *Frame) Record() arrow.Record { return f.rec }

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return int(f.rec.NumRows()) }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return int(f.rec.NumCols()) }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, f.NumCols())
	for i := range names {
		names[i] = f.rec.ColumnName(i)
	}

	return names
}

// Has reports whether the frame contains a column called name.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the array stored under name.
func (f *Frame) Column(name string) (arrow.Array, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, columnErrorf(opColumn, name, ErrColumnNotFound)
	}

	return f.rec.Column(i), nil
}

// Kind returns the kind of column name.
func (f *Frame) Kind(name string) (Kind, error) {
	arr, err := f.Column(name)
	if err != nil {
		return KindUnknown, err
	}

	return KindOf(arr.DataType())
}

// Value returns the canonical value at (name, row); nil marks a null.
func (f *Frame) Value(name string, row int) (any, error) {
	arr, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= arr.Len() {
		return nil, frameErrorf(opValue, fmt.Errorf("row %d: %w", row, ErrOutOfRange))
	}

	return Cell(arr, row), nil
}

// Select returns a frame holding exactly the named columns in the given order.
// Every name must exist (ErrColumnNotFound) and appear once (ErrDuplicateColumn).
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]Column, len(names))
	for i, name := range names {
		arr, err := f.Column(name)
		if err != nil {
			return nil, frameErrorf(opSelect, err)
		}
		cols[i] = Column{Name: name, Values: arr}
	}

	return f.rebuild(opSelect, cols)
}

// Exclude returns a frame without the named columns; unknown names are ignored.
func (f *Frame) Exclude(names ...string) *Frame {
	cols := make([]Column, 0, f.NumCols())
	for i, name := range f.Columns() {
		if slices.Contains(names, name) {
			continue
		}
		cols = append(cols, Column{Name: name, Values: f.rec.Column(i)})
	}
	out, _ := f.rebuild(opSelect, cols) // a subset of valid columns stays valid

	return out
}

// Take returns the given rows, in the given order (rows may repeat).
func (f *Frame) Take(rows []int) (*Frame, error) {
	n := f.NumRows()
	for _, r := range rows {
		if r < 0 || r >= n {
			return nil, frameErrorf(opTake, fmt.Errorf("row %d of %d: %w", r, n, ErrOutOfRange))
		}
	}

	return f.takeRows(rows)
}

// takeRows is Take without bounds checks.
func (f *Frame) takeRows(rows []int) (*Frame, error) {
	if f.NumCols() == 0 {
		return f, nil
	}
	cols := make([]Column, f.NumCols())
	for i, name := range f.Columns() {
		arr, err := take(f.rec.Column(i), rows)
		if err != nil {
			return nil, columnErrorf(opTake, name, err)
		}
		cols[i] = Column{Name: name, Values: arr}
	}

	return f.rebuild(opTake, cols)
}

// Filter keeps the rows for which keep returns true.
func (f *Frame) Filter(keep func(row int) bool) (*Frame, error) {
	if f.NumCols() == 0 {
		return f, nil
	}
	mask := make([]bool, f.NumRows())
	for r := range mask {
		mask[r] = keep(r)
	}
	sel := Bools(mask...)
	defer sel.Release()

	rec, err := compute.FilterRecordBatch(kernelCtx, f.rec, sel, compute.DefaultFilterOptions())
	if err != nil {
		return nil, frameErrorf(opFilter, err)
	}

	return FromRecord(rec)
}

// FilterEqual keeps the rows whose value in column name equals value.
// A nil value selects the null rows.
func (f *Frame) FilterEqual(name string, value any) (*Frame, error) {
	arr, err := f.Column(name)
	if err != nil {
		return nil, frameErrorf(opFilter, err)
	}
	want, _, err := Normalize(value)
	if err != nil {
		return nil, columnErrorf(opFilter, name, err)
	}

	return f.Filter(func(row int) bool { return Cell(arr, row) == want })
}

// WithColumn returns a frame with values appended as the last column.
func (f *Frame) WithColumn(name string, values arrow.Array) (*Frame, error) {
	if f.Has(name) {
		return nil, columnErrorf(opWithColumn, name, ErrDuplicateColumn)
	}
	if f.NumCols() > 0 && values.Len() != f.NumRows() {
		return nil, columnErrorf(opWithColumn, name,
			fmt.Errorf("%d rows, want %d: %w", values.Len(), f.NumRows(), ErrLengthMismatch))
	}
	cols := append(f.columns(), Column{Name: name, Values: values})

	return f.rebuild(opWithColumn, cols)
}

// WithNullColumn appends an all-null column of the given kind.
func (f *Frame) WithNullColumn(name string, kind Kind) (*Frame, error) {
	if rankOf(kind) < 0 {
		return nil, columnErrorf(opWithColumn, name, ErrUnsupportedType)
	}

	return f.WithColumn(name, NullArray(kind, f.NumRows()))
}

// CastColumn returns a frame whose column name is widened to kind in place.
func (f *Frame) CastColumn(name string, kind Kind) (*Frame, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, columnErrorf(opCast, name, ErrColumnNotFound)
	}
	casted, err := Cast(f.rec.Column(i), kind)
	if err != nil {
		return nil, columnErrorf(opCast, name, err)
	}
	cols := f.columns()
	cols[i].Values = casted

	return f.rebuild(opCast, cols)
}

// Equal reports whether f and g have the same column names, kinds and values.
func (f *Frame) Equal(g *Frame) bool {
	if f == nil || g == nil {
		return f == g
	}
	if !slices.Equal(f.Columns(), g.Columns()) {
		return false
	}

	return array.RecordEqual(f.rec, g.rec)
}

// columns returns the frame's columns as a fresh slice.
func (f *Frame) columns() []Column {
	cols := make([]Column, f.NumCols())
	for i, name := range f.Columns() {
		cols[i] = Column{Name: name, Values: f.rec.Column(i)}
	}

	return cols
}

// rebuild assembles a new frame from cols, tagging errors with op.
func (f *Frame) rebuild(op string, cols []Column) (*Frame, error) {
	out, err := New(cols...)
	if err != nil {
		return nil, frameErrorf(op, err)
	}

	return out, nil
}
