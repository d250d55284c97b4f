// Package gather stacks posterior draws into one long ("tidy") frame.
//
// 🚀 Output layout
//
//	chain | draw | <union of dimensions, ascending> | variable | value
//
// One row per (chain, draw, own dimension labels) of every selected variable.
// Dimensions a variable does not vary over are null on its rows; no variable
// is ever repeated along a dimension it lacks.
//
// ✨ Value type
//
// The value column takes the widest kind among the selected variables:
//
//	bool < int < float < string
//
// so {int, int} stays int, {int, float} becomes float and any string variable
// turns the whole column into text.
//
// ⚙️ Names
//
// The label and value column names default to "variable" and "value". Either
// colliding with an index column (chain, draw or a dimension) fails with
// ErrNameCollision before any reshaping.
//
//	tidy, err := gather.Draws(data,
//		gather.WithExtract(posterior.WithVarNames("intercept", "sd_def_field")))
package gather
