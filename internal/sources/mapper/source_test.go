// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mapper

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/internal/sources"
	"github.com/matt-FFFFFF/broom/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func create(t *testing.T, payload string) (sweep.GeneratorFunc, error) {
	t.Helper()
	return (&Source{}).Create(context.Background(), []byte(payload))
}

// render formats candidates so assertions do not depend on the decoded integer type.
func render(seq iter.Seq[any]) []string {
	var out []string
	for v := range seq {
		out = append(out, fmt.Sprint(v))
	}

	return out
}

func TestCreate(t *testing.T) {
	fn, err := create(t, `
type: mapper
on: --model
cases:
  - match: small
    value: 32
  - match: large
    values: [8, 16]
  - match: 7
    value: seven
default: 64
`)
	require.NoError(t, err)

	testCases := []struct {
		model any
		want  []string
	}{
		{model: "small", want: []string{"32"}},
		{model: "extra-large", want: []string{"8", "16"}},
		{model: 7, want: []string{"seven"}},
		{model: "medium", want: []string{"64"}},
	}

	for _, tc := range testCases {
		seq, err := fn(nil, sweep.State{sweep.Named("--model"): tc.model})
		require.NoError(t, err)
		assert.Equal(t, tc.want, render(seq), "model %v", tc.model)
	}
}

func TestCreateExactWithoutDefault(t *testing.T) {
	fn, err := create(t, `
type: mapper
on: --model
exact: true
cases:
  - match: small
    value: 32
`)
	require.NoError(t, err)

	_, err = fn(nil, sweep.State{sweep.Named("--model"): "smaller"})
	require.ErrorIs(t, err, sweep.ErrNoMatch)

	_, err = fn(nil, sweep.State{})
	assert.ErrorIs(t, err, sweep.ErrMissingKey)
}

func TestCreateNullCaseValue(t *testing.T) {
	fn, err := create(t, `
type: mapper
on: --model
cases:
  - match: small
    value: null
`)
	require.NoError(t, err)

	seq, err := fn(nil, sweep.State{sweep.Named("--model"): "small"})
	require.NoError(t, err)
	assert.Equal(t, []any{nil}, slices.Collect(seq))
}

func TestCreateErrors(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		wantErr error
	}{
		{name: "no key", payload: "type: mapper\ncases: [{match: a, value: 1}]", wantErr: ErrNoKey},
		{name: "no cases", payload: "type: mapper\non: --a", wantErr: ErrNoCases},
		{name: "case without match", payload: "type: mapper\non: --a\ncases: [{value: 1}]", wantErr: ErrNoMatchString},
		{name: "bad yaml", payload: "type: mapper\ncases: 3", wantErr: sources.ErrYamlUnmarshal},
		{
			name:    "misspelled field",
			payload: "type: mapper\non: --a\nexcat: true\ncases: [{match: sub, value: 1}]",
			wantErr: sources.ErrYamlUnmarshal,
		},
		{
			name:    "misspelled case field",
			payload: "type: mapper\non: --a\ncases: [{match: sub, vaule: 1}]",
			wantErr: sources.ErrYamlUnmarshal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := create(t, tc.payload)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestExampleIsValid(t *testing.T) {
	s := &Source{}
	payload, err := yaml.Marshal(s.Example())
	require.NoError(t, err)

	_, err = s.Create(context.Background(), payload)
	assert.NoError(t, err)
}

func TestRegister(t *testing.T) {
	r := sourceregistry.New(Register)
	assert.Contains(t, r, sourceType)
}
