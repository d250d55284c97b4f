// Package fixture builds small, seeded posterior datasets shaped like the
// classic six-nations rugby model with a home / away / neutral field effect.
//
// Groups:
//
//	posterior:    intercept[field], atts[team, field], defs[team, field],
//	              sd_att_field, sd_def_field                    (float)
//	prior:        the same variables drawn from another seed
//	sample_stats: diverging (bool), tree_depth (int), lp (float)
//
// Every group has 2 chains × 5 draws. The data are deterministic so tests can
// compare exact values.
package fixture

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/posterior"
)

// Shape of every group.
const (
	NumChains = 2
	NumDraws  = 5
)

// Teams and Fields are the coordinate labels of the "team" and "field" dims.
var (
	Teams  = []string{"England", "France", "Ireland", "Italy", "Scotland", "Wales"}
	Fields = []string{"home", "away", "neutral"}
)

// RugbyField returns the float-valued fixture.
func RugbyField() *posterior.InferenceData {
	data := posterior.New()
	must(data.AddGroup("posterior", rugbyGroup(rand.New(rand.NewSource(1)))))
	must(data.AddGroup("prior", rugbyGroup(rand.New(rand.NewSource(2)))))
	must(data.AddGroup("sample_stats", statsGroup(rand.New(rand.NewSource(3)))))

	return data
}

// RugbyFieldMixedTypes is RugbyField with three extra posterior variables:
// intercept_int and defs_int (rounded, int) and intercept_string (text).
func RugbyFieldMixedTypes() *posterior.InferenceData {
	r := rand.New(rand.NewSource(1))
	ds := rugbyGroup(r)
	intercept, _ := ds.Variable("intercept")
	defs, _ := ds.Variable("defs")
	must(ds.AddVariable("intercept_int", intercept.Dims(), rounded(intercept.Values())))
	must(ds.AddVariable("defs_int", defs.Dims(), rounded(defs.Values())))
	must(ds.AddVariable("intercept_string", intercept.Dims(), formatted(intercept.Values())))

	data := posterior.New()
	must(data.AddGroup("posterior", ds))

	return data
}

// rugbyGroup draws one group of the rugby model.
func rugbyGroup(r *rand.Rand) *posterior.Dataset {
	ds, err := posterior.NewDataset(posterior.Range(NumChains), posterior.Range(NumDraws))
	must(err)
	must(ds.SetCoords("team", frame.Strings(Teams...)))
	must(ds.SetCoords("field", frame.Strings(Fields...)))

	samples := NumChains * NumDraws
	must(ds.AddVariable("intercept", []string{"field"}, normals(r, samples*len(Fields), 3, 0.2)))
	must(ds.AddVariable("atts", []string{"team", "field"}, normals(r, samples*len(Teams)*len(Fields), 0, 0.3)))
	must(ds.AddVariable("defs", []string{"team", "field"}, normals(r, samples*len(Teams)*len(Fields), 0, 0.3)))
	must(ds.AddVariable("sd_att_field", nil, halfNormals(r, samples, 0.5)))
	must(ds.AddVariable("sd_def_field", nil, halfNormals(r, samples, 0.5)))

	return ds
}

// statsGroup draws sampler diagnostics.
func statsGroup(r *rand.Rand) *posterior.Dataset {
	ds, err := posterior.NewDataset(posterior.Range(NumChains), posterior.Range(NumDraws))
	must(err)

	samples := NumChains * NumDraws
	diverging := make([]bool, samples)
	depth := make([]int64, samples)
	for i := range diverging {
		diverging[i] = r.Float64() < 0.1
		depth[i] = int64(3 + r.Intn(3))
	}
	must(ds.AddVariable("diverging", nil, frame.Bools(diverging...)))
	must(ds.AddVariable("tree_depth", nil, frame.Int64s(depth...)))
	must(ds.AddVariable("lp", nil, normals(r, samples, -180, 4)))

	return ds
}

// normals draws n values from N(mu, sd²), rounded to 4 decimals.
func normals(r *rand.Rand, n int, mu, sd float64) arrow.Array {
	out := make([]float64, n)
	for i := range out {
		out[i] = round4(mu + sd*r.NormFloat64())
	}

	return frame.Float64s(out...)
}

// halfNormals draws n values from |N(0, sd²)|, rounded to 4 decimals.
func halfNormals(r *rand.Rand, n int, sd float64) arrow.Array {
	out := make([]float64, n)
	for i := range out {
		out[i] = round4(math.Abs(sd * r.NormFloat64()))
	}

	return frame.Float64s(out...)
}

func round4(x float64) float64 { return math.Round(x*1e4) / 1e4 }

// rounded converts float values to their nearest integers.
func rounded(arr arrow.Array) arrow.Array {
	out := make([]int64, arr.Len())
	for i := range out {
		out[i] = int64(math.Round(frame.Cell(arr, i).(float64)))
	}

	return frame.Int64s(out...)
}

// formatted renders float values as text.
func formatted(arr arrow.Array) arrow.Array {
	out := make([]string, arr.Len())
	for i := range out {
		out[i] = strconv.FormatFloat(frame.Cell(arr, i).(float64), 'g', -1, 64)
	}

	return frame.Strings(out...)
}

// must panics on fixture construction errors.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("fixture: %v", err))
	}
}
