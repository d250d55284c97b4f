// SPDX-License-Identifier: MIT

package posterior_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/posterior"
)

// cellsOf returns the canonical values of arr.
func cellsOf(arr arrow.Array) []any {
	out := make([]any, arr.Len())
	for i := range out {
		out[i] = frame.Cell(arr, i)
	}

	return out
}

// columnOf returns the canonical values of column name.
func columnOf(t *testing.T, f *frame.Frame, name string) []any {
	t.Helper()
	arr, err := f.Column(name)
	require.NoError(t, err)

	return cellsOf(arr)
}

// emptyDataset returns a 2 chain × 3 draw dataset with a "team" dim of size 2.
func emptyDataset(t *testing.T) *posterior.Dataset {
	t.Helper()
	ds, err := posterior.NewDataset(posterior.Range(2), posterior.Range(3))
	require.NoError(t, err)
	require.NoError(t, ds.SetCoords("team", frame.Strings("Wales", "France")))

	return ds
}

// zeros returns n zero floats.
func zeros(n int) arrow.Array {
	return frame.Float64s(make([]float64, n)...)
}
