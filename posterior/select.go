// SPDX-License-Identifier: MIT
// Package: polarbayes/posterior
//
// select.go: variable selection (names, "~" exclusions, like / regex filters).

package posterior

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Filter selects how variable names given to WithVarNames are matched.
type Filter int

const (
	// FilterNone matches names exactly.
	FilterNone Filter = iota
	// FilterLike matches every variable containing the given substring.
	FilterLike
	// FilterRegex matches every variable in which the pattern is found.
	FilterRegex
)

// String returns the textual form accepted by ParseFilter.
func (f Filter) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterLike:
		return "like"
	case FilterRegex:
		return "regex"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// ParseFilter parses "", "none", "like" or "regex".
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return FilterNone, nil
	case "like":
		return FilterLike, nil
	case "regex":
		return FilterRegex, nil
	default:
		return FilterNone, fmt.Errorf("%q: %w", s, ErrInvalidFilter)
	}
}

// selectVariables resolves names against the dataset's variables.
//
// Rules:
//   - No names selects every variable, in dataset order.
//   - "~x" excludes x, unless a variable is literally named "~x".
//   - Any exclusion means every variable except the excluded ones; the
//     inclusions given alongside are ignored, and exclusions that match no
//     variable are skipped.
//   - FilterNone keeps the given order; like / regex keep dataset order.
//
// Errors: ErrUnknownVariable, ErrInvalidFilter, ErrNoVariables.
func selectVariables(all, names []string, filter Filter) ([]string, error) {
	if len(all) == 0 {
		return nil, ErrNoVariables
	}
	if len(names) == 0 {
		return slices.Clone(all), nil
	}

	var include, exclude []string
	for _, n := range names {
		if rest, ok := strings.CutPrefix(n, "~"); ok && !slices.Contains(all, n) {
			exclude = append(exclude, rest)
			continue
		}
		include = append(include, n)
	}

	match, err := matcher(filter)
	if err != nil {
		return nil, err
	}

	var picked []string
	switch {
	case len(exclude) > 0:
		excluded := make(map[string]bool)
		for _, pat := range exclude {
			hits, err := matchAll(all, pat, match)
			if err != nil {
				return nil, err
			}
			for _, h := range hits {
				excluded[h] = true
			}
		}
		picked = slices.DeleteFunc(slices.Clone(all), func(v string) bool { return excluded[v] })
	case filter == FilterNone:
		for _, n := range include {
			if !slices.Contains(all, n) {
				return nil, quoted(n, ErrUnknownVariable)
			}
			if !slices.Contains(picked, n) {
				picked = append(picked, n)
			}
		}
	default:
		for _, v := range all {
			for _, pat := range include {
				ok, err := match(v, pat)
				if err != nil {
					return nil, err
				}
				if ok {
					picked = append(picked, v)
					break
				}
			}
		}
	}

	if len(picked) == 0 {
		return nil, fmt.Errorf("%v: %w", names, ErrNoVariables)
	}

	return picked, nil
}

// matchAll returns the variables matched by pat, in dataset order.
func matchAll(all []string, pat string, match func(v, pat string) (bool, error)) ([]string, error) {
	var hits []string
	for _, v := range all {
		ok, err := match(v, pat)
		if err != nil {
			return nil, err
		}
		if ok {
			hits = append(hits, v)
		}
	}

	return hits, nil
}

// matcher returns the name predicate of filter.
func matcher(filter Filter) (func(v, pat string) (bool, error), error) {
	switch filter {
	case FilterNone:
		return func(v, pat string) (bool, error) { return v == pat, nil }, nil
	case FilterLike:
		return func(v, pat string) (bool, error) { return strings.Contains(v, pat), nil }, nil
	case FilterRegex:
		cache := make(map[string]*regexp.Regexp)
		return func(v, pat string) (bool, error) {
			re, ok := cache[pat]
			if !ok {
				var err error
				if re, err = regexp.Compile(pat); err != nil {
					return false, fmt.Errorf("%q: %v: %w", pat, err, ErrInvalidFilter)
				}
				cache[pat] = re
			}
			return re.MatchString(v), nil
		}, nil
	default:
		return nil, fmt.Errorf("%s: %w", filter, ErrInvalidFilter)
	}
}
