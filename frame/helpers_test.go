// SPDX-License-Identifier: MIT
// Package frame_test contains test helpers shared by the frame tests.

package frame_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polarbayes/frame"
)

// cellsOf returns every value of arr in canonical form.
func cellsOf(arr arrow.Array) []any {
	out := make([]any, arr.Len())
	for i := range out {
		out[i] = frame.Cell(arr, i)
	}

	return out
}

// columnOf returns the canonical values of column name or fails the test.
func columnOf(t *testing.T, f *frame.Frame, name string) []any {
	t.Helper()
	arr, err := f.Column(name)
	require.NoError(t, err)

	return cellsOf(arr)
}

// mustFrame assembles a frame or fails the test.
func mustFrame(t *testing.T, cols ...frame.Column) *frame.Frame {
	t.Helper()
	f, err := frame.New(cols...)
	require.NoError(t, err)

	return f
}

// mustValues builds an array of kind from values or fails the test.
func mustValues(t *testing.T, kind frame.Kind, vals ...any) arrow.Array {
	t.Helper()
	arr, err := frame.FromValues(kind, vals)
	require.NoError(t, err)

	return arr
}
