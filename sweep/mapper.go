// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// MapCase maps a match string to one or more output values.
type MapCase struct {
	Match  string
	Values []any
}

// Case returns a MapCase. Several values fan out into several candidates.
func Case(match string, values ...any) MapCase {
	return MapCase{Match: match, Values: values}
}

// Mapper derives the candidates of an item from the value of an earlier key.
//
// The value of the dependency key is rendered with fmt.Sprint and matched
// against the cases: an exact match wins, then the first case, in order, whose
// match string is a substring of the value, then the default.
type Mapper struct {
	key        string
	cases      []MapCase
	substrings bool
	fallback   []any
	hasDefault bool
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// ExactOnly disables substring matching.
func ExactOnly() MapperOption {
	return func(m *Mapper) {
		m.substrings = false
	}
}

// WithDefault sets the values used when no case matches.
// Without values it removes the default.
func WithDefault(values ...any) MapperOption {
	return func(m *Mapper) {
		m.fallback = values
		m.hasDefault = len(values) > 0
	}
}

// NewMapper returns a Mapper over the value of key.
func NewMapper(key string, cases []MapCase, opts ...MapperOption) *Mapper {
	m := &Mapper{
		key:        key,
		cases:      slices.Clone(cases),
		substrings: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Generator implements GeneratorFunc.
func (m *Mapper) Generator(_ []Key, state State) (iter.Seq[any], error) {
	v, err := state.Lookup(m.key)
	if err != nil {
		return nil, err
	}

	var vals []any

	if v == nil {
		vals, err = m.defaults(v)
	} else {
		vals, err = m.Match(fmt.Sprint(v))
	}

	if err != nil {
		return nil, err
	}

	return slices.Values(vals), nil
}

// Match returns the values mapped to value.
// It returns ErrNoMatch when nothing matches and there is no default.
func (m *Mapper) Match(value string) ([]any, error) {
	for _, c := range m.cases {
		if c.Match == value {
			return c.Values, nil
		}
	}

	if m.substrings {
		for _, c := range m.cases {
			if strings.Contains(value, c.Match) {
				return c.Values, nil
			}
		}
	}

	return m.defaults(value)
}

func (m *Mapper) defaults(value any) ([]any, error) {
	if !m.hasDefault {
		return nil, fmt.Errorf("%w: %q=%v", ErrNoMatch, m.key, value)
	}

	return m.fallback, nil
}
