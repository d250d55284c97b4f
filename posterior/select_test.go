// SPDX-License-Identifier: MIT

package posterior_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polarbayes/internal/fixture"
	"github.com/katalvlaran/polarbayes/posterior"
)

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]posterior.Filter{
		"":      posterior.FilterNone,
		"none":  posterior.FilterNone,
		"like":  posterior.FilterLike,
		"REGEX": posterior.FilterRegex,
	} {
		got, err := posterior.ParseFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := posterior.ParseFilter("glob")
	require.ErrorIs(t, err, posterior.ErrInvalidFilter)

	assert.Equal(t, "like", posterior.FilterLike.String())
}

func TestPrepare_Selection(t *testing.T) {
	data := fixture.RugbyField()
	cases := []struct {
		name   string
		names  []string
		filter posterior.Filter
		want   []string
	}{
		{"all", nil, posterior.FilterNone,
			[]string{"intercept", "atts", "defs", "sd_att_field", "sd_def_field"}},
		{"exact keeps given order", []string{"defs", "intercept"}, posterior.FilterNone,
			[]string{"defs", "intercept"}},
		{"exact drops repeats", []string{"defs", "defs"}, posterior.FilterNone,
			[]string{"defs"}},
		{"exclusion only", []string{"~atts"}, posterior.FilterNone,
			[]string{"intercept", "defs", "sd_att_field", "sd_def_field"}},
		{"like", []string{"sd"}, posterior.FilterLike,
			[]string{"sd_att_field", "sd_def_field"}},
		{"exclusion overrides inclusions", []string{"intercept", "~atts"}, posterior.FilterNone,
			[]string{"intercept", "defs", "sd_att_field", "sd_def_field"}},
		{"unknown exclusion skipped", []string{"~nope", "~defs"}, posterior.FilterNone,
			[]string{"intercept", "atts", "sd_att_field", "sd_def_field"}},
		{"like with exclusion", []string{"sd", "~def"}, posterior.FilterLike,
			[]string{"intercept", "atts", "sd_att_field"}},
		{"regex exclusion", []string{"~^sd_"}, posterior.FilterRegex,
			[]string{"intercept", "atts", "defs"}},
		{"like exclusion only", []string{"~sd"}, posterior.FilterLike,
			[]string{"intercept", "atts", "defs"}},
		{"regex keeps dataset order", []string{"^d", "^a"}, posterior.FilterRegex,
			[]string{"atts", "defs"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ext, err := posterior.Prepare(data,
				posterior.WithVarNames(tc.names...), posterior.WithFilter(tc.filter))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ext.Variables())
		})
	}
}

func TestPrepare_SelectionErrors(t *testing.T) {
	data := fixture.RugbyField()
	cases := []struct {
		name   string
		names  []string
		filter posterior.Filter
		target error
	}{
		{"unknown", []string{"nope"}, posterior.FilterNone, posterior.ErrUnknownVariable},
		{"bad regex", []string{"("}, posterior.FilterRegex, posterior.ErrInvalidFilter},
		{"bad mode", []string{"x"}, posterior.Filter(9), posterior.ErrInvalidFilter},
		{"no like match", []string{"zzz"}, posterior.FilterLike, posterior.ErrNoVariables},
		{"all excluded", []string{"~."}, posterior.FilterRegex, posterior.ErrNoVariables},
		{"bad exclusion regex", []string{"~("}, posterior.FilterRegex, posterior.ErrInvalidFilter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := posterior.Prepare(data,
				posterior.WithVarNames(tc.names...), posterior.WithFilter(tc.filter))
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestPrepare_TildeLiteral(t *testing.T) {
	ds := emptyDataset(t)
	require.NoError(t, ds.AddVariable("~odd", nil, zeros(6)))
	require.NoError(t, ds.AddVariable("even", nil, zeros(6)))
	data := posterior.New()
	require.NoError(t, data.AddGroup(posterior.DefaultGroup, ds))

	ext, err := posterior.Prepare(data, posterior.WithVarNames("~odd"))
	require.NoError(t, err)
	assert.Equal(t, []string{"~odd"}, ext.Variables())
}
