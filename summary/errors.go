// SPDX-License-Identifier: MIT
// Package: polarbayes/summary
//
// errors.go: sentinel errors for the summary package.

package summary

import (
	"errors"
	"fmt"
)

var (
	// ErrNonNumeric indicates a value column holding text.
	ErrNonNumeric = errors.New("summary: value column is not numeric")

	// ErrEmptyGroup indicates a group whose values are all null.
	ErrEmptyGroup = errors.New("summary: group has no values")
)

// summaryErrorf wraps err with an operation tag.
func summaryErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
