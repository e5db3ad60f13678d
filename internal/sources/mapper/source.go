// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mapper

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/internal/sources"
	"github.com/matt-FFFFFF/broom/sweep"
)

var _ sourceregistry.Builder = (*Source)(nil)

var (
	// ErrNoKey is returned when the mapper has no key to map.
	ErrNoKey = errors.New("mapper needs the key to map in `on`")
	// ErrNoCases is returned when the mapper has neither cases nor a default.
	ErrNoCases = errors.New("mapper needs at least one case or a default")
	// ErrNoMatchString is returned when a case has no match string.
	ErrNoMatchString = errors.New("mapper case needs a `match` string")
)

// Source builds sweep.Mapper generators.
type Source struct{}

// Create decodes the payload and returns the mapper generator.
func (s *Source) Create(_ context.Context, payload []byte) (sweep.GeneratorFunc, error) {
	def := new(Definition)
	if err := yaml.UnmarshalWithOptions(payload, def, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(sources.ErrYamlUnmarshal, err)
	}

	m, err := def.toMapper()
	if err != nil {
		return nil, err
	}

	return m.Generator, nil
}

func (d *Definition) toMapper() (*sweep.Mapper, error) {
	if d.On == "" {
		return nil, ErrNoKey
	}

	hasDefault := d.Default != nil || len(d.Defaults) > 0
	if len(d.Cases) == 0 && !hasDefault {
		return nil, ErrNoCases
	}

	cases := make([]sweep.MapCase, 0, len(d.Cases))

	for i, c := range d.Cases {
		if c.Match == nil {
			return nil, fmt.Errorf("%w: case %d", ErrNoMatchString, i)
		}

		values := c.Values
		if len(values) == 0 {
			values = []any{c.Value}
		}

		cases = append(cases, sweep.Case(fmt.Sprint(c.Match), values...))
	}

	var opts []sweep.MapperOption

	if d.Exact {
		opts = append(opts, sweep.ExactOnly())
	}

	switch {
	case len(d.Defaults) > 0:
		opts = append(opts, sweep.WithDefault(d.Defaults...))
	case d.Default != nil:
		opts = append(opts, sweep.WithDefault(d.Default))
	}

	return sweep.NewMapper(d.On, cases, opts...), nil
}

// Description returns a description of the source type.
func (s *Source) Description() string {
	return "Maps the value of an earlier key to one or more values"
}

// Example returns an example definition.
func (s *Source) Example() any {
	return &Definition{
		BaseDefinition: sources.BaseDefinition{Type: sourceType},
		On:             "--model",
		Cases: []CaseDefinition{
			{Match: "small", Value: 32},
			{Match: "large", Values: []any{8, 16}},
		},
		Default: 64,
	}
}
