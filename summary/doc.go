// Package summary reduces tidy draws to point and interval estimates.
//
// 🚀 Input
//
// Any long frame with a numeric value column, typically the output of
// gather.Draws. Every column other than the sample columns (chain, draw) and
// the value column is a grouping key, so each (variable, dimension labels...)
// combination is summarized separately. Null keys are valid keys.
//
// ✨ Output
//
//	<keys...> | n | mean | sd | median | lower | upper
//
// Groups appear in order of first appearance. n counts the non-null values;
// sd is the sample standard deviation (NaN for a single value); lower and
// upper bound the equal-tailed interval of the configured width, taken as
// empirical quantiles.
//
// ⚙️ Usage
//
//	tidy, _ := gather.Draws(data)
//	est, err := summary.PointInterval(tidy, summary.WithWidth(0.9))
package summary
