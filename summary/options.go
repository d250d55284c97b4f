// SPDX-License-Identifier: MIT
// Package: polarbayes/summary
//
// options.go: functional options for PointInterval.
//
// Contract:
//   • Constructors panic on meaningless input (width outside (0, 1), empty
//     names).
//   • Defaults: width 0.95, value column "value", sample columns chain, draw.

package summary

import (
	"github.com/katalvlaran/polarbayes/schema"
)

// DefaultWidth is the interval width used when WithWidth is not given.
const DefaultWidth = 0.95

// Option customizes PointInterval.
type Option func(*config)

// config holds the resolved settings.
type config struct {
	width   float64
	value   string
	samples []string
}

// WithWidth sets the probability mass of the interval. Panics unless
// 0 < w < 1.
func WithWidth(w float64) Option {
	if !(w > 0 && w < 1) {
		panic("summary: WithWidth outside (0, 1)")
	}
	return func(c *config) { c.width = w }
}

// WithValueName names the value column. Panics on "".
func WithValueName(name string) Option {
	if name == "" {
		panic("summary: WithValueName(\"\")")
	}
	return func(c *config) { c.value = name }
}

// WithSampleColumns names the columns identifying a sample; they are
// neither keys nor summarized. Missing columns are ignored.
func WithSampleColumns(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(c *config) { c.samples = cp }
}

// newConfig applies opts on top of the defaults.
func newConfig(opts ...Option) config {
	cfg := config{width: DefaultWidth, value: schema.ValueName, samples: schema.SampleColumns()}
	for _, set := range opts {
		set(&cfg)
	}

	return cfg
}
