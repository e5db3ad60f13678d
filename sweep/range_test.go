// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	testCases := []struct {
		name       string
		start, end int
		want       []any
	}{
		{name: "ascending", start: 1, end: 6, want: []any{1, 2, 3, 4, 5}},
		{name: "negative start", start: -2, end: 1, want: []any{-2, -1, 0}},
		{name: "empty", start: 3, end: 3, want: nil},
		{name: "reversed bounds", start: 5, end: 1, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRange(tc.start, tc.end)

			seq, err := r.Generator(nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, slices.Collect(seq))
			assert.Equal(t, len(tc.want), r.Len())
		})
	}
}
