// SPDX-License-Identifier: MIT
// Package: polarbayes/posterior
//
// errors.go: sentinel errors for the posterior package.
//
// Every error returned by Prepare / Extract wraps exactly one of these
// sentinels; callers branch with errors.Is and may surface the message as is.

package posterior

import (
	"errors"
	"fmt"
)

var (
	// ErrNilData indicates a nil *InferenceData or *Dataset argument.
	ErrNilData = errors.New("posterior: nil data")

	// ErrUnknownGroup indicates that the requested group does not exist.
	ErrUnknownGroup = errors.New("posterior: unknown group")

	// ErrDuplicateGroup indicates that a group name is already taken.
	ErrDuplicateGroup = errors.New("posterior: duplicate group")

	// ErrUnknownVariable indicates a variable name absent from the group.
	ErrUnknownVariable = errors.New("posterior: unknown variable")

	// ErrDuplicateVariable indicates that a variable name is already taken.
	ErrDuplicateVariable = errors.New("posterior: duplicate variable")

	// ErrNoVariables indicates that a selection matched no variable.
	ErrNoVariables = errors.New("posterior: no variables selected")

	// ErrInvalidFilter indicates an unknown filter mode or a bad pattern.
	ErrInvalidFilter = errors.New("posterior: invalid variable filter")

	// ErrUnknownDim indicates a dimension without coordinates.
	ErrUnknownDim = errors.New("posterior: unknown dimension")

	// ErrReservedName indicates the use of "chain" / "draw" (or an empty
	// string) as a variable or dimension name.
	ErrReservedName = errors.New("posterior: reserved or empty name")

	// ErrShapeMismatch indicates values whose count or nesting disagrees with
	// the chains, draws and dimension sizes.
	ErrShapeMismatch = errors.New("posterior: shape mismatch")

	// ErrDuplicateCoord indicates repeated chain, draw or coordinate labels.
	ErrDuplicateCoord = errors.New("posterior: duplicate coordinate")

	// ErrNullCoord indicates a missing coordinate label.
	ErrNullCoord = errors.New("posterior: null coordinate")

	// ErrSamplesNeedCombined indicates sub-sampling with chains kept separate.
	ErrSamplesNeedCombined = errors.New("posterior: num samples requires combined chains")

	// ErrTooManySamples indicates a sub-sample larger than the available samples.
	ErrTooManySamples = errors.New("posterior: num samples exceeds available samples")

	// ErrDecode indicates a malformed posterior document.
	ErrDecode = errors.New("posterior: decode")
)

// posteriorErrorf wraps err with an operation tag.
func posteriorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// quoted wraps err with a quoted name.
func quoted(name string, err error) error {
	return fmt.Errorf("%q: %w", name, err)
}
