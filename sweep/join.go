// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"strings"
)

const (
	// DefaultDelimiter separates the fragments produced by Join.
	DefaultDelimiter = " "
	// DefaultAssignment separates a key from its value in Join.
	DefaultAssignment = "="
)

type joinOptions struct {
	delimiter  string
	assignment string
}

// JoinOption configures Join.
type JoinOption func(*joinOptions)

// WithDelimiter sets the string placed between fragments.
func WithDelimiter(d string) JoinOption {
	return func(o *joinOptions) {
		o.delimiter = d
	}
}

// WithAssignment sets the string placed between a key and its value.
func WithAssignment(a string) JoinOption {
	return func(o *joinOptions) {
		o.assignment = a
	}
}

// Join renders keys and state as a single string such as "cmd --a=1 --b=2".
//
// Keys are rendered in order. Anonymous keys contribute only their value.
// A nil value drops the fragment, and a named key whose value renders as the
// empty string contributes only the key, which suits boolean flags.
func Join(keys []Key, state State, opts ...JoinOption) string {
	o := joinOptions{
		delimiter:  DefaultDelimiter,
		assignment: DefaultAssignment,
	}
	for _, opt := range opts {
		opt(&o)
	}

	frags := make([]string, 0, len(keys))

	for _, k := range keys {
		v := state[k]
		if v == nil {
			continue
		}

		val := fmt.Sprint(v)

		switch {
		case k.Anonymous():
			frags = append(frags, val)
		case val == "":
			frags = append(frags, k.name)
		default:
			frags = append(frags, k.name+o.assignment+val)
		}
	}

	return strings.Join(frags, o.delimiter)
}
