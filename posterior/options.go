// SPDX-License-Identifier: MIT
// Package: polarbayes/posterior
//
// options.go: functional options for Prepare / Extract.
//
// Contract:
//   • Option constructors panic on meaningless input (empty group, n ≤ 0,
//     nil *rand.Rand); runtime problems surface as errors from Prepare.
//   • Defaults: group "posterior", combined chains, every variable,
//     no sub-sampling.
//   • Without WithSeed / WithRand, sub-sampling uses a time-seeded source.

package posterior

import (
	"math/rand"
	"time"
)

// DefaultGroup is the group extracted when WithGroup is not given.
const DefaultGroup = "posterior"

// Option customizes an extraction.
type Option func(*extractConfig)

// extractConfig holds the resolved extraction parameters.
type extractConfig struct {
	group      string
	combined   bool
	varNames   []string
	filter     Filter
	numSamples int // 0 = every sample
	rng        *rand.Rand
}

// WithGroup selects the group to extract. Panics on an empty name.
func WithGroup(name string) Option {
	if name == "" {
		panic("posterior: WithGroup(\"\")")
	}
	return func(c *extractConfig) { c.group = name }
}

// WithCombined controls whether chains are combined into one sample axis
// (true, the default) or kept separate.
func WithCombined(combined bool) Option {
	return func(c *extractConfig) { c.combined = combined }
}

// WithVarNames restricts the extraction to the given names or patterns.
// A leading "~" excludes; once any name excludes, the plain names are ignored
// and the result is every variable minus the excluded ones. Repeated calls
// replace the list.
func WithVarNames(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(c *extractConfig) { c.varNames = cp }
}

// WithFilter sets how WithVarNames entries are interpreted.
func WithFilter(f Filter) Option {
	return func(c *extractConfig) { c.filter = f }
}

// WithNumSamples draws n samples without replacement from the combined
// samples. Panics if n ≤ 0.
func WithNumSamples(n int) Option {
	if n <= 0 {
		panic("posterior: WithNumSamples(n ≤ 0)")
	}
	return func(c *extractConfig) { c.numSamples = n }
}

// WithSeed makes sub-sampling reproducible.
func WithSeed(seed int64) Option {
	return func(c *extractConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r for sub-sampling. Successive extractions sharing r draw
// successive permutations. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("posterior: WithRand(nil)")
	}
	return func(c *extractConfig) { c.rng = r }
}

// newExtractConfig applies opts on top of the defaults (last writer wins).
func newExtractConfig(opts ...Option) extractConfig {
	cfg := extractConfig{group: DefaultGroup, combined: true}
	for _, set := range opts {
		set(&cfg)
	}

	return cfg
}

// source returns the configured generator or a time-seeded one.
func (c extractConfig) source() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
