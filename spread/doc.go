// Package spread extracts posterior draws into wide ("spread") frames: one
// row per (chain, draw, dimension labels...) and one column per variable.
//
// 🚀 What you get
//
//   - Index columns first, ordered by schema.OrderIndexColumnNames
//     (chain, draw, then the remaining dimensions alphabetically).
//   - Variable columns next, in selection order.
//   - The ordered index column names alongside the frame.
//
// ✨ Selection
//
// Selection, sub-sampling and group options are those of the posterior
// package, passed through unchanged; so are its errors.
//
//	f, err := spread.Draws(data,
//		posterior.WithVarNames("atts", "defs"),
//		posterior.WithNumSamples(100), posterior.WithSeed(1))
//
// ⚙️ Broadcasting
//
// Variables that do not vary over a dimension required by another selected
// variable are repeated along it. Use gather.Draws for a layout without
// repetition.
package spread
