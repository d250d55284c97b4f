// SPDX-License-Identifier: MIT
// Package: polarbayes/schema
//
// options.go: functional options for the ordering policy.
//
// Contract:
//   • Option constructors panic on meaningless input (empty names); the
//     ordering itself never fails.
//   • Defaults are ChainName / DrawName.

package schema

// Option customizes the reserved names used by OrderIndexColumnNames.
type Option func(*orderConfig)

// orderConfig holds the resolved reserved names.
type orderConfig struct {
	chain string
	draw  string
}

// WithChainName overrides the reserved chain column name.
// Once overridden, a literal "chain" column sorts as an ordinary name.
// Panics on an empty name.
func WithChainName(name string) Option {
	if name == "" {
		panic("schema: WithChainName(\"\")")
	}
	return func(c *orderConfig) { c.chain = name }
}

// WithDrawName overrides the reserved draw column name.
// Once overridden, a literal "draw" column sorts as an ordinary name.
// Panics on an empty name.
func WithDrawName(name string) Option {
	if name == "" {
		panic("schema: WithDrawName(\"\")")
	}
	return func(c *orderConfig) { c.draw = name }
}

// newOrderConfig applies opts on top of the defaults (last writer wins).
func newOrderConfig(opts ...Option) orderConfig {
	cfg := orderConfig{chain: ChainName, draw: DrawName}
	for _, set := range opts {
		set(&cfg)
	}

	return cfg
}
