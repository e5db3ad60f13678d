// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperMatch(t *testing.T) {
	testCases := []struct {
		name    string
		cases   []MapCase
		opts    []MapperOption
		value   string
		want    []any
		wantErr error
	}{
		{
			name:  "exact match beats earlier substring match",
			cases: []MapCase{Case("big", "sub"), Case("bigger", "exact")},
			value: "bigger",
			want:  []any{"exact"},
		},
		{
			name:  "first substring match wins",
			cases: []MapCase{Case("b", 1), Case("ab", 2)},
			value: "abc",
			want:  []any{1},
		},
		{
			name:  "substring match before default",
			cases: []MapCase{Case("small", 10)},
			opts:  []MapperOption{WithDefault(0)},
			value: "very-small-set",
			want:  []any{10},
		},
		{
			name:  "default when nothing matches",
			cases: []MapCase{Case("small", 10)},
			opts:  []MapperOption{WithDefault(0)},
			value: "big",
			want:  []any{0},
		},
		{
			name:    "no match without default",
			cases:   []MapCase{Case("small", 10)},
			value:   "big",
			wantErr: ErrNoMatch,
		},
		{
			name:    "exact only ignores substrings",
			cases:   []MapCase{Case("small", 10)},
			opts:    []MapperOption{ExactOnly()},
			value:   "very-small-set",
			wantErr: ErrNoMatch,
		},
		{
			name:  "fan out",
			cases: []MapCase{Case("a", 1, 2, 3)},
			value: "a",
			want:  []any{1, 2, 3},
		},
		{
			name:    "empty default is no default",
			cases:   []MapCase{Case("small", 10)},
			opts:    []MapperOption{WithDefault()},
			value:   "big",
			wantErr: ErrNoMatch,
		},
		{
			name:    "empty default clears an earlier default",
			cases:   []MapCase{Case("small", 10)},
			opts:    []MapperOption{WithDefault(0), WithDefault()},
			value:   "big",
			wantErr: ErrNoMatch,
		},
		{
			name:  "default fans out",
			cases: nil,
			opts:  []MapperOption{WithDefault("x", "y")},
			value: "a",
			want:  []any{"x", "y"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMapper("k", tc.cases, tc.opts...)

			got, err := m.Match(tc.value)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMapperGenerator(t *testing.T) {
	m := NewMapper("--n", []MapCase{Case("1", "one"), Case("2", "two", "deux")})

	seq, err := m.Generator(nil, State{Named("--n"): 2})
	require.NoError(t, err)
	assert.Equal(t, []any{"two", "deux"}, slices.Collect(seq))

	_, err = m.Generator(nil, State{Named("--m"): 2})
	require.ErrorIs(t, err, ErrMissingKey)
}

func TestMapperNilValueUsesDefault(t *testing.T) {
	m := NewMapper("k", []MapCase{Case("<nil>", "never")}, WithDefault("fallback"))

	seq, err := m.Generator(nil, State{Named("k"): nil})
	require.NoError(t, err)
	assert.Equal(t, []any{"fallback"}, slices.Collect(seq))

	_, err = NewMapper("k", nil).Generator(nil, State{Named("k"): nil})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestMapperFanOutMultipliesCombinations(t *testing.T) {
	n, err := Count(Sweep(
		Pair("a", Values("x", "y")),
		Pair("b", Generator(NewMapper("a", []MapCase{Case("x", 1, 2, 3), Case("y", 4)}).Generator)),
	))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
