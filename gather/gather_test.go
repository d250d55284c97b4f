// SPDX-License-Identifier: MIT

package gather_test

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/gather"
	"github.com/katalvlaran/polarbayes/internal/fixture"
	"github.com/katalvlaran/polarbayes/posterior"
	"github.com/katalvlaran/polarbayes/schema"
	"github.com/katalvlaran/polarbayes/spread"
)

// columnOf returns the canonical values of column name.
func columnOf(t *testing.T, f *frame.Frame, name string) []any {
	t.Helper()
	arr, err := f.Column(name)
	require.NoError(t, err)
	out := make([]any, arr.Len())
	for i := range out {
		out[i] = frame.Cell(arr, i)
	}

	return out
}

// assertGathered checks the invariants every tidy frame must satisfy.
func assertGathered(t *testing.T, f *frame.Frame, vars, dims []string, variableName, valueName string) {
	t.Helper()

	sortedDims := slices.Clone(dims)
	sort.Strings(sortedDims)
	want := append([]string{schema.ChainName, schema.DrawName}, sortedDims...)
	want = append(want, variableName, valueName)
	require.Equal(t, want, f.Columns())

	labels := columnOf(t, f, variableName)
	seen := map[string]bool{}
	for _, l := range labels {
		name, ok := l.(string)
		require.True(t, ok, "label %v", l)
		require.Contains(t, vars, name)
		seen[name] = true
	}
	for _, v := range vars {
		assert.True(t, seen[v], "variable %q missing", v)
	}

	for _, col := range []string{schema.ChainName, schema.DrawName} {
		kind, err := f.Kind(col)
		require.NoError(t, err)
		assert.Equal(t, frame.KindInt, kind, col)
		assert.NotContains(t, columnOf(t, f, col), nil, col)
	}
}

// rowsOf returns the rows of f whose label column equals name.
func rowsOf(t *testing.T, f *frame.Frame, name string) *frame.Frame {
	t.Helper()
	out, err := f.FilterEqual(schema.VariableName, name)
	require.NoError(t, err)

	return out
}

func TestAssertNotInIndexColumns(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	index := make([]string, 10)
	for i := range index {
		index[i] = fmt.Sprint(r.Float64())
	}

	for _, argName := range []string{"x", "a long name with spaces", "a_name%with_characters"} {
		for _, value := range []string{"test", "531a", "a_different_value"} {
			err := gather.AssertNotInIndexColumns(argName, value, append(slices.Clone(index), value))
			require.ErrorIs(t, err, gather.ErrNameCollision)
			assert.Contains(t, err.Error(), fmt.Sprintf("specified %s='%s'", argName, value))

			assert.NoError(t, gather.AssertNotInIndexColumns(argName, value, index))
		}
	}
}

func TestVariables_WrapsUnpivot(t *testing.T) {
	z := make([]string, 10)
	for i := range z {
		z[i] = fmt.Sprint(i + 5)
	}
	xs := make([]int64, 10)
	for i := range xs {
		xs[i] = int64(i)
	}
	ys := slices.Repeat([]string{"c"}, 10)

	plain, err := frame.New(
		frame.Column{Name: "x", Values: frame.Int64s(xs...)},
		frame.Column{Name: "y", Values: frame.Strings(ys...)},
		frame.Column{Name: "z", Values: frame.Strings(z...)},
	)
	require.NoError(t, err)
	sampled, err := plain.WithColumn("chain", frame.Int64s(xs...))
	require.NoError(t, err)
	sampled, err = sampled.WithColumn("draw", frame.Int64s(xs...))
	require.NoError(t, err)

	cases := []struct {
		name  string
		data  *frame.Frame
		index []string
	}{
		{"explicit index", plain, []string{"x", "y"}},
		{"default index", sampled, nil},
	}
	names := []struct {
		variable, value string
	}{
		{"", ""},
		{schema.VariableName, schema.ValueName},
		{"custom_name", "custom_name_2"},
	}
	for _, tc := range cases {
		for _, n := range names {
			t.Run(tc.name+"/"+n.variable+"/"+n.value, func(t *testing.T) {
				var opts []gather.Option
				wantVar, wantVal := schema.VariableName, schema.ValueName
				if n.variable != "" {
					opts = append(opts, gather.WithVariableName(n.variable))
					wantVar = n.variable
				}
				if n.value != "" {
					opts = append(opts, gather.WithValueName(n.value))
					wantVal = n.value
				}
				index := tc.index
				if index == nil {
					index = []string{schema.ChainName, schema.DrawName}
				}

				expected, err := tc.data.Unpivot(index, nil, wantVar, wantVal)
				require.NoError(t, err)
				actual, err := gather.Variables(tc.data, tc.index, opts...)
				require.NoError(t, err)
				assert.True(t, expected.Equal(actual))
			})
		}
	}
}

func TestDraws_MixedIndices(t *testing.T) {
	data := fixture.RugbyField()
	f, err := gather.Draws(data)
	require.NoError(t, err)

	ds, err := data.Group("posterior")
	require.NoError(t, err)
	assertGathered(t, f, ds.Variables(), []string{"team", "field"}, schema.VariableName, schema.ValueName)

	uses := map[string]map[string]bool{
		"intercept":    {"team": false, "field": true},
		"defs":         {"team": true, "field": true},
		"sd_def_field": {"team": false, "field": false},
	}
	for name, dims := range uses {
		rows := rowsOf(t, f, name)
		require.Positive(t, rows.NumRows(), name)
		for dim, used := range dims {
			for r, v := range columnOf(t, rows, dim) {
				if used {
					require.NotNil(t, v, "%s.%s row %d", name, dim, r)
				} else {
					require.Nil(t, v, "%s.%s row %d", name, dim, r)
				}
			}
		}
	}
}

func TestDraws_MissingValues(t *testing.T) {
	ds, err := posterior.NewDataset(posterior.Range(2), posterior.Range(2))
	require.NoError(t, err)
	require.NoError(t, ds.SetCoords("k", frame.Int64s(10, 20)))
	x, err := frame.FromValues(frame.KindFloat, []any{1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5, nil})
	require.NoError(t, err)
	require.NoError(t, ds.AddVariable("x", []string{"k"}, x))
	require.NoError(t, ds.AddVariable("mu", nil, frame.Float64s(0.1, 0.2, 0.3, 0.4)))
	data := posterior.New()
	require.NoError(t, data.AddGroup(posterior.DefaultGroup, ds))

	want := [][]any{
		{int64(0), int64(0), int64(10), "x", 1.5},
		{int64(0), int64(0), int64(20), "x", 2.5},
		{int64(0), int64(1), int64(10), "x", 3.5},
		{int64(0), int64(1), int64(20), "x", 4.5},
		{int64(1), int64(0), int64(10), "x", 5.5},
		{int64(1), int64(0), int64(20), "x", 6.5},
		{int64(1), int64(1), int64(10), "x", 7.5},
		{int64(1), int64(1), int64(20), "x", nil},
		{int64(0), int64(0), nil, "mu", 0.1},
		{int64(0), int64(1), nil, "mu", 0.2},
		{int64(1), int64(0), nil, "mu", 0.3},
		{int64(1), int64(1), nil, "mu", 0.4},
	}
	cases := []struct {
		name     string
		combined bool
	}{
		{"combined chains", true},
		{"separate chains", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := gather.Draws(data, gather.WithExtract(posterior.WithCombined(tc.combined)))
			require.NoError(t, err)
			assertGathered(t, f, []string{"x", "mu"}, []string{"k"}, schema.VariableName, schema.ValueName)

			got := make([][]any, f.NumRows())
			for r := range got {
				for _, col := range f.Columns() {
					v, err := f.Value(col, r)
					require.NoError(t, err)
					got[r] = append(got[r], v)
				}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestDraws_DoesNotCreateUnneededIndices(t *testing.T) {
	data := fixture.RugbyField()
	cases := []struct {
		vars []string
		dims []string
	}{
		{[]string{"sd_def_field"}, nil},
		{[]string{"intercept", "sd_def_field"}, []string{"field"}},
		{[]string{"defs", "sd_def_field"}, []string{"team", "field"}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.vars), func(t *testing.T) {
			f, err := gather.Draws(data, gather.WithExtract(posterior.WithVarNames(tc.vars...)))
			require.NoError(t, err)
			assertGathered(t, f, tc.vars, tc.dims, schema.VariableName, schema.ValueName)
		})
	}
}

func TestDraws_RowCountWithoutDuplication(t *testing.T) {
	f, err := gather.Draws(fixture.RugbyField(),
		gather.WithExtract(posterior.WithVarNames("sd_def_field", "intercept")))
	require.NoError(t, err)

	samples := fixture.NumChains * fixture.NumDraws
	require.Equal(t, samples+samples*len(fixture.Fields), f.NumRows())
	assert.Equal(t, samples, rowsOf(t, f, "sd_def_field").NumRows())
	assert.Equal(t, samples*len(fixture.Fields), rowsOf(t, f, "intercept").NumRows())

	// Each (chain, draw, field) of intercept appears exactly once.
	rows := rowsOf(t, f, "intercept")
	chains, draws, fields := columnOf(t, rows, "chain"), columnOf(t, rows, "draw"), columnOf(t, rows, "field")
	seen := map[string]bool{}
	for r := range chains {
		key := fmt.Sprint(chains[r], draws[r], fields[r])
		require.False(t, seen[key], key)
		seen[key] = true
	}
}

func TestDraws_ValuesMatchSpread(t *testing.T) {
	data := fixture.RugbyField()
	wide, err := spread.Draws(data, posterior.WithVarNames("intercept"))
	require.NoError(t, err)
	tidy, err := gather.Draws(data, gather.WithExtract(posterior.WithVarNames("intercept", "sd_def_field")))
	require.NoError(t, err)

	rows := rowsOf(t, tidy, "intercept")
	assert.Equal(t, columnOf(t, wide, "intercept"), columnOf(t, rows, schema.ValueName))
	assert.Equal(t, columnOf(t, wide, "field"), columnOf(t, rows, "field"))
	assert.Equal(t, columnOf(t, wide, "chain"), columnOf(t, rows, "chain"))
}

func TestDraws_TypeUnification(t *testing.T) {
	mixed := fixture.RugbyFieldMixedTypes()
	stats := fixture.RugbyField()
	cases := []struct {
		name  string
		data  *posterior.InferenceData
		group string
		vars  []string
		want  frame.Kind
	}{
		{"everything", mixed, "posterior", nil, frame.KindString},
		{"int and int", mixed, "posterior", []string{"intercept_int", "defs_int"}, frame.KindInt},
		{"int and float", mixed, "posterior", []string{"intercept", "intercept_int", "defs_int"}, frame.KindFloat},
		{"int and string", mixed, "posterior", []string{"defs_int", "intercept_string"}, frame.KindString},
		{"float and string", mixed, "posterior", []string{"defs", "intercept_string"}, frame.KindString},
		{"bool and int", stats, "sample_stats", []string{"diverging", "tree_depth"}, frame.KindInt},
		{"bool only", stats, "sample_stats", []string{"diverging"}, frame.KindBool},
		{"bool, int and float", stats, "sample_stats", nil, frame.KindFloat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := gather.Draws(tc.data, gather.WithExtract(
				posterior.WithGroup(tc.group), posterior.WithVarNames(tc.vars...)))
			require.NoError(t, err)
			kind, err := f.Kind(schema.ValueName)
			require.NoError(t, err)
			assert.Equal(t, tc.want, kind)
		})
	}
}

func TestDraws_WidenedValues(t *testing.T) {
	f, err := gather.Draws(fixture.RugbyFieldMixedTypes(),
		gather.WithExtract(posterior.WithVarNames("intercept_int", "intercept_string")))
	require.NoError(t, err)

	ints := columnOf(t, rowsOf(t, f, "intercept_int"), schema.ValueName)
	for _, v := range ints {
		s, ok := v.(string)
		require.True(t, ok)
		assert.Regexp(t, `^-?\d+$`, s)
	}
}

func TestDraws_CustomNames(t *testing.T) {
	f, err := gather.Draws(fixture.RugbyField(),
		gather.WithVariableName("param"), gather.WithValueName("sample"),
		gather.WithExtract(posterior.WithVarNames("atts")))
	require.NoError(t, err)
	assertGathered(t, f, []string{"atts"}, []string{"team", "field"}, "param", "sample")
}

func TestDraws_NameCollision(t *testing.T) {
	data := fixture.RugbyField()
	cases := []struct {
		name string
		opts []gather.Option
		msg  string
	}{
		{"label is chain", []gather.Option{gather.WithVariableName("chain")}, "specified variable_name='chain'"},
		{"label is a dim", []gather.Option{gather.WithVariableName("team")}, "specified variable_name='team'"},
		{"value is draw", []gather.Option{gather.WithValueName("draw")}, "specified value_name='draw'"},
		{"value is a dim", []gather.Option{gather.WithValueName("field")}, "specified value_name='field'"},
		{"label equals value", []gather.Option{gather.WithVariableName("x"), gather.WithValueName("x")}, "specified value_name='x'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gather.Draws(data, tc.opts...)
			require.ErrorIs(t, err, gather.ErrNameCollision)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	// A dimension name is free when no selected variable uses it.
	_, err := gather.Draws(data,
		gather.WithVariableName("team"),
		gather.WithExtract(posterior.WithVarNames("intercept")))
	require.NoError(t, err)
}

func TestDraws_PropagatesExtractionErrors(t *testing.T) {
	data := fixture.RugbyField()
	cases := []struct {
		name   string
		opts   []posterior.Option
		target error
	}{
		{"unknown variable", []posterior.Option{posterior.WithVarNames("nope")}, posterior.ErrUnknownVariable},
		{"unknown group", []posterior.Option{posterior.WithGroup("warmup")}, posterior.ErrUnknownGroup},
		{"bad filter", []posterior.Option{posterior.WithVarNames("("), posterior.WithFilter(posterior.FilterRegex)}, posterior.ErrInvalidFilter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, want := posterior.Prepare(data, tc.opts...)
			_, err := gather.Draws(data, gather.WithExtract(tc.opts...))
			require.ErrorIs(t, err, tc.target)
			assert.Equal(t, want.Error(), err.Error())
		})
	}
}

func TestDraws_Deterministic(t *testing.T) {
	data := fixture.RugbyField()
	opts := []gather.Option{gather.WithExtract(posterior.WithNumSamples(4), posterior.WithSeed(3))}

	a, err := gather.Draws(data, opts...)
	require.NoError(t, err)
	b, err := gather.Draws(data, opts...)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 4*(1+2*len(fixture.Teams))*len(fixture.Fields)+4*2, a.NumRows())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { gather.WithVariableName("") })
	assert.Panics(t, func() { gather.WithValueName("") })
}
