// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sourceregistry

import (
	"context"
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type constBuilder struct{}

type constDefinition struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

func (constBuilder) Create(_ context.Context, payload []byte) (sweep.GeneratorFunc, error) {
	def := new(constDefinition)
	if err := yaml.Unmarshal(payload, def); err != nil {
		return nil, err
	}

	if def.Value == "" {
		return nil, errBoom
	}

	return func(_ []sweep.Key, _ sweep.State) (iter.Seq[any], error) {
		return slices.Values([]any{def.Value}), nil
	}, nil
}

func (constBuilder) Description() string { return "returns a constant" }

func (constBuilder) Example() any { return &constDefinition{Type: "const", Value: "x"} }

func registerConst(r Registry) {
	r.Register("const", constBuilder{})
}

func TestBuild(t *testing.T) {
	r := New(registerConst)

	fn, err := r.Build(context.Background(), map[string]any{"type": "const", "value": "hello"})
	require.NoError(t, err)

	seq, err := fn(nil, sweep.State{})
	require.NoError(t, err)
	assert.Equal(t, []any{"hello"}, slices.Collect(seq))
}

func TestBuildErrors(t *testing.T) {
	r := New(registerConst)

	testCases := []struct {
		name    string
		source  map[string]any
		wantErr error
	}{
		{name: "unknown type", source: map[string]any{"type": "nope"}, wantErr: ErrUnknownSourceType},
		{name: "missing type", source: map[string]any{"value": "x"}, wantErr: ErrSourceUnmarshal},
		{name: "builder failure", source: map[string]any{"type": "const"}, wantErr: ErrSourceCreation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Build(context.Background(), tc.source)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuilderErrorIsWrapped(t *testing.T) {
	r := New(registerConst)
	_, err := r.Build(context.Background(), map[string]any{"type": "const"})
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "const")
}

func TestIterSorted(t *testing.T) {
	r := New(registerConst, func(r Registry) {
		r.Register("alpha", constBuilder{})
	})

	var names []string
	for name := range r.Iter() {
		names = append(names, name)
	}

	assert.Equal(t, []string{"alpha", "const"}, names)
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	r := New(registerConst)
	ctx := WithRegistry(context.Background(), r)
	assert.Contains(t, FromContext(ctx), "const")
}
