// SPDX-License-Identifier: MIT
// Package: polarbayes/gather
//
// options.go: functional options for Draws / Variables.
//
// Contract:
//   • Option constructors panic on empty names; collisions with index
//     columns are reported as errors because they depend on the data.

package gather

import (
	"github.com/katalvlaran/polarbayes/posterior"
	"github.com/katalvlaran/polarbayes/schema"
)

// Option customizes a gather.
type Option func(*config)

// config holds the resolved settings.
type config struct {
	variableName string
	valueName    string
	extract      []posterior.Option
}

// WithVariableName sets the label column name. Panics on "".
func WithVariableName(name string) Option {
	if name == "" {
		panic("gather: WithVariableName(\"\")")
	}
	return func(c *config) { c.variableName = name }
}

// WithValueName sets the value column name. Panics on "".
func WithValueName(name string) Option {
	if name == "" {
		panic("gather: WithValueName(\"\")")
	}
	return func(c *config) { c.valueName = name }
}

// WithExtract forwards group, selection and sub-sampling options to
// posterior.Prepare. Repeated calls accumulate.
func WithExtract(opts ...posterior.Option) Option {
	return func(c *config) { c.extract = append(c.extract, opts...) }
}

// newConfig applies opts on top of the defaults.
func newConfig(opts ...Option) config {
	cfg := config{variableName: schema.VariableName, valueName: schema.ValueName}
	for _, set := range opts {
		set(&cfg)
	}

	return cfg
}
