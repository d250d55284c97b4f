// SPDX-License-Identifier: MIT
// Package: polarbayes/frame
//
// errors.go: sentinel errors for the frame package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers match with errors.Is.
//   • Operations attach context as "<Op>: <detail>: <sentinel>" through %w.
//   • No operation panics on user input.

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound indicates that a referenced column name is absent.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrDuplicateColumn indicates that a column name would appear twice.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrLengthMismatch indicates columns of different lengths in one frame.
	ErrLengthMismatch = errors.New("frame: column length mismatch")

	// ErrUnsupportedType indicates an Arrow type outside Bool/Int64/Float64/String.
	ErrUnsupportedType = errors.New("frame: unsupported column type")

	// ErrCast indicates a narrowing or otherwise impossible value conversion.
	ErrCast = errors.New("frame: invalid cast")

	// ErrOutOfRange indicates a row index outside [0, NumRows).
	ErrOutOfRange = errors.New("frame: row index out of range")

	// ErrSchemaMismatch indicates frames whose column names or kinds differ
	// where identical schemas are required (Concat).
	ErrSchemaMismatch = errors.New("frame: schema mismatch")

	// ErrNothingToUnpivot indicates that Unpivot has no value columns to stack.
	ErrNothingToUnpivot = errors.New("frame: no columns to unpivot")
)

// Operation names used as error prefixes.
const (
	opNew        = "New"
	opFromRecord = "FromRecord"
	opSelect     = "Select"
	opColumn     = "Column"
	opValue      = "Value"
	opTake       = "Take"
	opFilter     = "Filter"
	opWithColumn = "WithColumn"
	opCast       = "CastColumn"
	opUnpivot    = "Unpivot"
	opConcat     = "Concat"
)

// frameErrorf prefixes err with the operation tag, keeping err matchable.
func frameErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// columnErrorf prefixes err with the operation tag and the column name.
func columnErrorf(op, name string, err error) error {
	return fmt.Errorf("%s: %q: %w", op, name, err)
}
