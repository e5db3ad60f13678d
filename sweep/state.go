// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"maps"
)

// State maps each key fixed so far to its chosen value.
// The enumerator never modifies a state once it has been handed out.
type State map[Key]any

// Lookup returns the value of the named key.
// It returns ErrMissingKey if the key has not been set.
func (s State) Lookup(name string) (any, error) {
	v, ok := s[Named(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, name)
	}

	return v, nil
}

// Names returns the values of all named keys, keyed by name.
func (s State) Names() map[string]any {
	m := make(map[string]any, len(s))

	for k, v := range s {
		if !k.Anonymous() {
			m[k.name] = v
		}
	}

	return m
}

// with returns a copy of the state extended with k = v.
func (s State) with(k Key, v any) State {
	next := make(State, len(s)+1)
	maps.Copy(next, s)
	next[k] = v

	return next
}

// Combination is one fully resolved member of a sweep.
// Every key in Keys has a value in State and vice versa.
type Combination struct {
	Keys  []Key
	State State
}

// String renders the combination with Join and the default separators.
func (c Combination) String() string {
	return Join(c.Keys, c.State)
}

// Values returns the values in key order.
func (c Combination) Values() []any {
	vals := make([]any, len(c.Keys))
	for i, k := range c.Keys {
		vals[i] = c.State[k]
	}

	return vals
}
