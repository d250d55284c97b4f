// SPDX-License-Identifier: MIT
// Package: polarbayes/posterior
//
// samples.go: which (chain, draw) samples an extraction covers.

package posterior

import "fmt"

// sample addresses one (chain, draw) pair by position.
type sample struct {
	chain int // position in Dataset.chains
	draw  int // position in Dataset.draws
}

// pickSamples enumerates samples chain-major, or draws n of them without
// replacement when sub-sampling is configured.
func pickSamples(ds *Dataset, cfg extractConfig) ([]sample, error) {
	nc, nd := len(ds.chains), len(ds.draws)
	total := nc * nd
	if cfg.numSamples == 0 {
		out := make([]sample, 0, total)
		for c := 0; c < nc; c++ {
			for d := 0; d < nd; d++ {
				out = append(out, sample{chain: c, draw: d})
			}
		}
		return out, nil
	}

	if !cfg.combined {
		return nil, ErrSamplesNeedCombined
	}
	if cfg.numSamples > total {
		return nil, fmt.Errorf("%d of %d: %w", cfg.numSamples, total, ErrTooManySamples)
	}
	perm := cfg.source().Perm(total)[:cfg.numSamples]
	out := make([]sample, len(perm))
	for i, flat := range perm {
		out[i] = sample{chain: flat / nd, draw: flat % nd}
	}

	return out, nil
}
