// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sourceregistry

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/sweep"
)

var (
	// ErrUnknownSourceType is returned when a source type is not registered.
	ErrUnknownSourceType = errors.New("unknown source type")
	// ErrSourceCreation is returned when a source cannot be created.
	ErrSourceCreation = errors.New("failed to create source")
	// ErrSourceUnmarshal is returned when a source definition cannot be read.
	ErrSourceUnmarshal = errors.New("failed to unmarshal source definition")
)

// Builder creates the generator for one source type.
type Builder interface {
	// Create decodes the YAML payload into the source definition and returns the generator.
	Create(ctx context.Context, payload []byte) (sweep.GeneratorFunc, error)
	// Description returns a one line summary of the source type.
	Description() string
	// Example returns an example definition, used to document the source type.
	Example() any
}

// RegistrationFunc adds one or more source types to a registry.
type RegistrationFunc func(Registry)

// Registry holds the mapping between source types and their builders.
type Registry map[string]Builder

// New creates a registry and applies the registration functions to it.
func New(fns ...RegistrationFunc) Registry {
	r := make(Registry, len(fns))
	for _, fn := range fns {
		fn(r)
	}

	return r
}

// Register registers a new source type with its builder.
func (r Registry) Register(sourceType string, b Builder) {
	r[sourceType] = b
}

// Iter returns the registered source types in name order.
func (r Registry) Iter() iter.Seq2[string, Builder] {
	return func(yield func(string, Builder) bool) {
		for _, name := range slices.Sorted(maps.Keys(r)) {
			if !yield(name, r[name]) {
				return
			}
		}
	}
}

type sourceType struct {
	Type string `yaml:"type"`
}

// CreateFromYAML creates a generator from a YAML source definition using the registered builders.
func (r Registry) CreateFromYAML(ctx context.Context, yamlData []byte) (sweep.GeneratorFunc, error) {
	var st sourceType
	if err := yaml.Unmarshal(yamlData, &st); err != nil {
		return nil, errors.Join(ErrSourceUnmarshal, err)
	}

	if st.Type == "" {
		return nil, fmt.Errorf("%w: source has no type", ErrSourceUnmarshal)
	}

	b, ok := r[st.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSourceType, st.Type)
	}

	fn, err := b.Create(ctx, yamlData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceCreation, st.Type, err)
	}

	return fn, nil
}

// Build creates a generator from a decoded source block.
// The block is re-marshalled to YAML so every builder decodes a single format,
// whichever format the definition file was written in.
func (r Registry) Build(ctx context.Context, source map[string]any) (sweep.GeneratorFunc, error) {
	payload, err := yaml.Marshal(source)
	if err != nil {
		return nil, errors.Join(ErrSourceUnmarshal, err)
	}

	return r.CreateFromYAML(ctx, payload)
}

type contextKey struct{}

// WithRegistry returns a copy of ctx carrying the registry.
func WithRegistry(ctx context.Context, r Registry) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the registry stored in ctx, or nil.
func FromContext(ctx context.Context) Registry {
	r, _ := ctx.Value(contextKey{}).(Registry)
	return r
}
