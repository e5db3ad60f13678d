// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sources

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"reflect"

	"github.com/matt-FFFFFF/broom/sweep"
)

// ErrYamlUnmarshal is returned when a source definition cannot be decoded.
var ErrYamlUnmarshal = errors.New("failed to decode source definition, check the fields of the source block")

// BaseDefinition contains the fields common to all source types.
type BaseDefinition struct {
	// Type selects the source implementation, e.g. "mapper" or "range".
	Type string `yaml:"type"`
}

// Expand replaces ${key} and $key references in s with the values of those keys in state.
// A reference to a key that is not in the state fails with sweep.ErrMissingKey.
func Expand(s string, state sweep.State) (string, error) {
	var firstErr error

	out := os.Expand(s, func(name string) string {
		v, err := state.Lookup(name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			return ""
		}

		if v == nil {
			return ""
		}

		return fmt.Sprint(v)
	})

	return out, firstErr
}

// Flatten returns the elements of v if it is a slice or array, and v itself otherwise.
// A nil v has no elements.
func Flatten(v any) []any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) ||
		(rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8) {
		return []any{v}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}

// Strings returns a sequence over ss.
func Strings(ss []string) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, s := range ss {
			if !yield(s) {
				return
			}
		}
	}
}
