// Package posterior models the output of a posterior sampler and extracts it
// into wide frames.
//
// 🚀 Data model
//
//	InferenceData ─┬─ group "posterior"          → *Dataset
//	               ├─ group "prior"              → *Dataset
//	               └─ ...
//
//	Dataset: chain ids × draw ids, named dimension coordinates, and ordered
//	variables. A Variable varies over (chain, draw, dims...) and stores its
//	values row-major in one Arrow array.
//
// ✨ Extraction
//
// Prepare resolves a group, a variable selection and the set of samples once;
// the resulting Extraction can be materialized as a wide frame (Frame) or
// narrowed to a subset of its variables that shares the same samples (Subset).
// Extract does both steps at once.
//
// Selection follows the familiar var_names / filter_vars convention:
//
//	WithVarNames("mu", "tau")                      exact names, given order
//	WithVarNames("~tau")                           everything but tau
//	WithVarNames("def"), WithFilter(FilterLike)    substring match
//	WithVarNames("^a"), WithFilter(FilterRegex)    regular expression search
//
// Sub-sampling (WithNumSamples) draws a random permutation of the combined
// (chain, draw) samples; seed it with WithSeed or WithRand for reproducible
// results.
//
// ⚙️ Files
//
// Decode and LoadFile read YAML or JSON documents:
//
//	groups:
//	  - name: posterior
//	    coords: {team: [Wales, France]}
//	    variables:
//	      - name: atts
//	        dims: [team]
//	        values: [[[0.1, -0.2], [0.3, 0.0]]]   # [chain][draw][team]
package posterior
