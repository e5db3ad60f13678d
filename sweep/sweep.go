// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"iter"
	"slices"
)

// resolved is an item after key assignment.
type resolved struct {
	key  Key
	spec ValueSpec
}

// Sweep returns the combinations of items.
//
// Combinations are produced in cross-product order, with later items varying
// fastest. The candidates of a generator item are computed for each branch from
// the keys and state fixed by the items before it, so different branches may
// see different candidates. An item without candidates prunes its branch.
//
// A shape error is yielded once and ends the sequence. An error returned by a
// generator is yielded for its branch only: if the consumer keeps ranging, the
// enumeration continues with the next sibling branch.
func Sweep(items ...Item) iter.Seq2[Combination, error] {
	return func(yield func(Combination, error) bool) {
		entries, err := resolve(items)
		if err != nil {
			yield(Combination{}, err)
			return
		}

		keys := make([]Key, len(entries))
		for i, e := range entries {
			keys[i] = e.key
		}

		walk(entries, keys, 0, State{}, yield)
	}
}

// SweepValues is Sweep over loosely shaped arguments, converted with Infer.
func SweepValues(args ...any) iter.Seq2[Combination, error] {
	return func(yield func(Combination, error) bool) {
		items := make([]Item, len(args))

		for i, arg := range args {
			item, err := Infer(arg)
			if err != nil {
				yield(Combination{}, fmt.Errorf("argument %d: %w", i, err))
				return
			}

			items[i] = item
		}

		for c, err := range Sweep(items...) {
			if !yield(c, err) {
				return
			}
		}
	}
}

// Count consumes seq and returns the number of combinations.
// It stops at the first error.
func Count(seq iter.Seq2[Combination, error]) (int, error) {
	n := 0

	for _, err := range seq {
		if err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

func resolve(items []Item) ([]resolved, error) {
	entries := make([]resolved, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	next := 1

	for i, it := range items {
		switch t := it.(type) {
		case nil, skipItem:
			continue
		case entry:
			if t.spec == nil {
				return nil, fmt.Errorf("%w: item %d has no value", ErrShape, i)
			}

			if t.anonymous {
				entries = append(entries, resolved{key: anonymousKey(next), spec: t.spec})
				next++

				continue
			}

			if t.key == "" {
				return nil, fmt.Errorf("%w: item %d has an empty key", ErrShape, i)
			}

			if _, dup := seen[t.key]; dup {
				return nil, fmt.Errorf("%w: item %d repeats key %q", ErrShape, i, t.key)
			}

			seen[t.key] = struct{}{}
			entries = append(entries, resolved{key: Named(t.key), spec: t.spec})
		default:
			return nil, fmt.Errorf("%w: item %d has unsupported type %T", ErrShape, i, it)
		}
	}

	return entries, nil
}

// walk extends state with every candidate of entries[i] and recurses.
// It returns false once the consumer has stopped.
func walk(entries []resolved, keys []Key, i int, state State, yield func(Combination, error) bool) bool {
	if i == len(entries) {
		return yield(Combination{Keys: slices.Clone(keys), State: state}, nil)
	}

	e := entries[i]

	seq, err := e.spec.candidates(slices.Clip(keys[:i]), state)
	if err != nil {
		return yield(Combination{}, fmt.Errorf("key %s: %w", e.key, err))
	}

	if seq == nil {
		return true
	}

	for v := range seq {
		if !walk(entries, keys, i+1, state.with(e.key, v), yield) {
			return false
		}
	}

	return true
}
