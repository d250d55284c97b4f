// SPDX-License-Identifier: MIT
// Package: polarbayes/gather
//
// errors.go: sentinel errors for the gather package.
//
// Extraction errors (posterior.ErrUnknownVariable, ...) are returned as is;
// only naming problems are reported here.

package gather

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNameCollision indicates a label or value column name that is already
// used by an index column, or a label name equal to the value name.
var ErrNameCollision = errors.New("gather: column name collision")

// assertNotInIndexColumns fails when value is one of the index columns.
// argName names the offending setting in the message.
func assertNotInIndexColumns(argName, value string, index []string) error {
	if slices.Contains(index, value) {
		return fmt.Errorf("specified %s='%s' collides with index columns %v: %w",
			argName, value, index, ErrNameCollision)
	}

	return nil
}
