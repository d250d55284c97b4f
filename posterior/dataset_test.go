// SPDX-License-Identifier: MIT

package posterior_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/posterior"
)

func TestNewDataset_DuplicateIDs(t *testing.T) {
	_, err := posterior.NewDataset([]int64{0, 0}, posterior.Range(3))
	require.ErrorIs(t, err, posterior.ErrDuplicateCoord)

	_, err = posterior.NewDataset(posterior.Range(2), []int64{4, 5, 4})
	require.ErrorIs(t, err, posterior.ErrDuplicateCoord)
}

func TestSetCoords(t *testing.T) {
	ds := emptyDataset(t)

	labels, ok := ds.Coords("team")
	require.True(t, ok)
	assert.Equal(t, []any{"Wales", "France"}, cellsOf(labels))
	assert.Equal(t, []string{"team"}, ds.Dims())

	// Reserved and duplicate labels.
	require.ErrorIs(t, ds.SetCoords("chain", frame.Int64s(0)), posterior.ErrReservedName)
	require.ErrorIs(t, ds.SetCoords("", frame.Int64s(0)), posterior.ErrReservedName)
	require.ErrorIs(t, ds.SetCoords("field", frame.Strings("home", "home")), posterior.ErrDuplicateCoord)

	withNull, err := frame.FromValues(frame.KindString, []any{"home", nil})
	require.NoError(t, err)
	err = ds.SetCoords("field", withNull)
	require.ErrorIs(t, err, posterior.ErrNullCoord)
	assert.NotErrorIs(t, err, posterior.ErrDuplicateCoord)
	assert.Equal(t, []string{"team"}, ds.Dims())

	// Resizing is allowed until a variable depends on the dim.
	require.NoError(t, ds.SetCoords("team", frame.Strings("Wales", "France", "Italy")))
	require.NoError(t, ds.AddVariable("atts", []string{"team"}, frame.Float64s(make([]float64, 18)...)))
	require.ErrorIs(t, ds.SetCoords("team", frame.Strings("Wales")), posterior.ErrShapeMismatch)
	require.NoError(t, ds.SetCoords("team", frame.Strings("W", "F", "I")))
	assert.Equal(t, []string{"team"}, ds.Dims())

	// A dim cannot reuse a variable name.
	require.ErrorIs(t, ds.SetCoords("atts", frame.Int64s(0)), posterior.ErrDuplicateVariable)
}

func TestAddVariable(t *testing.T) {
	ds := emptyDataset(t)

	require.NoError(t, ds.AddVariable("mu", nil, frame.Float64s(1, 2, 3, 4, 5, 6)))
	require.NoError(t, ds.AddVariable("n", []string{"team"}, frame.Int64s(make([]int64, 12)...)))
	assert.Equal(t, []string{"mu", "n"}, ds.Variables())

	v, ok := ds.Variable("n")
	require.True(t, ok)
	assert.Equal(t, "n", v.Name())
	assert.Equal(t, []string{"team"}, v.Dims())
	assert.Equal(t, frame.KindInt, v.Kind())
	assert.Equal(t, 12, v.Values().Len())

	_, ok = ds.Variable("missing")
	assert.False(t, ok)
}

func TestAddVariable_Errors(t *testing.T) {
	ds := emptyDataset(t)
	require.NoError(t, ds.AddVariable("mu", nil, frame.Float64s(1, 2, 3, 4, 5, 6)))

	cases := []struct {
		name   string
		varNm  string
		dims   []string
		n      int
		target error
	}{
		{"reserved chain", "chain", nil, 6, posterior.ErrReservedName},
		{"reserved draw", "draw", nil, 6, posterior.ErrReservedName},
		{"empty", "", nil, 6, posterior.ErrReservedName},
		{"duplicate", "mu", nil, 6, posterior.ErrDuplicateVariable},
		{"names a dim", "team", nil, 6, posterior.ErrDuplicateVariable},
		{"reserved dim", "x", []string{"draw"}, 6, posterior.ErrReservedName},
		{"unknown dim", "x", []string{"field"}, 6, posterior.ErrUnknownDim},
		{"repeated dim", "x", []string{"team", "team"}, 24, posterior.ErrShapeMismatch},
		{"wrong count", "x", []string{"team"}, 6, posterior.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ds.AddVariable(tc.varNm, tc.dims, frame.Float64s(make([]float64, tc.n)...))
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestInferenceData_Groups(t *testing.T) {
	data := posterior.New()
	ds := emptyDataset(t)
	require.NoError(t, data.AddGroup("prior", ds))
	require.NoError(t, data.AddGroup("posterior", ds))
	require.ErrorIs(t, data.AddGroup("prior", ds), posterior.ErrDuplicateGroup)
	require.ErrorIs(t, data.AddGroup("x", nil), posterior.ErrNilData)

	assert.Equal(t, []string{"posterior", "prior"}, data.Groups())
	got, err := data.Group("prior")
	require.NoError(t, err)
	assert.Same(t, ds, got)
	_, err = data.Group("warmup")
	require.ErrorIs(t, err, posterior.ErrUnknownGroup)
}
