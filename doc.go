// Package polarbayes reshapes posterior samples from Bayesian inference into
// tidy tables.
//
// 🚀 What is polarbayes?
//
//	A small, deterministic library (and CLI) that turns named arrays of
//	draws, each indexed by chain, draw and model dimensions such as
//	"team" or "field", into flat Arrow-backed frames:
//		• spread: one column per variable (wide)
//		• gather: one row per (sample, dimension labels, variable) (long)
//		• summary: point and interval estimates of gathered draws
//
// ✨ Guarantees
//
//   - chain and draw are always present, integer and non-null.
//   - Index columns are ordered chain, draw, then the remaining
//     dimensions alphabetically, regardless of input order.
//   - Gathered variables never gain a dimension they do not vary over;
//     such cells are null.
//   - The value column takes the widest kind: bool < int < float < string.
//
// Under the hood the code is organized in layers, leaves first:
//
//	schema/   : reserved names and the index column ordering policy
//	frame/    : immutable Arrow-backed frames: select, unpivot, cast, concat, CSV/JSON
//	posterior/: InferenceData model, variable selection, sub-sampling, YAML/JSON decoding
//	spread/   : wide extraction with ordered index columns
//	gather/   : the tidy union of differently shaped variables
//	summary/  : per-variable mean, sd, median and equal-tailed intervals
//	cmd/polarbayes: the command line front end
//
// Quick start:
//
//	data, _ := posterior.LoadFile("draws.yaml")
//	tidy, err := gather.Draws(data,
//		gather.WithExtract(posterior.WithVarNames("intercept", "sd_def_field")))
package polarbayes
