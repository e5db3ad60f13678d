// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import "iter"

// Range yields the integers from Start up to, but not including, End.
type Range struct {
	Start int
	End   int
}

// NewRange returns the Range [start, end).
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Generator implements GeneratorFunc. It does not depend on the state.
func (r Range) Generator(_ []Key, _ State) (iter.Seq[any], error) {
	return func(yield func(any) bool) {
		for i := r.Start; i < r.End; i++ {
			if !yield(i) {
				return
			}
		}
	}, nil
}

// Len returns the number of values in the range.
func (r Range) Len() int {
	return max(r.End-r.Start, 0)
}
