// SPDX-License-Identifier: MIT

package schema

// Reserved column names. ChainName and DrawName are the defaults of the
// ordering policy; VariableName and ValueName are the default label and value
// columns of the tidy layout.
const (
	ChainName    = "chain"
	DrawName     = "draw"
	VariableName = "variable"
	ValueName    = "value"
)

// SampleColumns returns the default sample index columns in policy order.
func SampleColumns() []string {
	return []string{ChainName, DrawName}
}
