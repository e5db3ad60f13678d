// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package numrange

import (
	"context"
	"errors"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/internal/sources"
	"github.com/matt-FFFFFF/broom/sweep"
)

var _ sourceregistry.Builder = (*Source)(nil)

// ErrNoEnd is returned when the range has no end.
var ErrNoEnd = errors.New("range needs an `end`")

// Source builds sweep.Range generators.
type Source struct{}

// Create decodes the payload and returns the range generator.
func (s *Source) Create(_ context.Context, payload []byte) (sweep.GeneratorFunc, error) {
	def := new(Definition)
	if err := yaml.UnmarshalWithOptions(payload, def, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(sources.ErrYamlUnmarshal, err)
	}

	if def.End == nil {
		return nil, ErrNoEnd
	}

	return sweep.NewRange(def.Start, *def.End).Generator, nil
}

// Description returns a description of the source type.
func (s *Source) Description() string {
	return "Yields the integers from start up to, but not including, end"
}

// Example returns an example definition.
func (s *Source) Example() any {
	end := 3

	return &Definition{
		BaseDefinition: sources.BaseDefinition{Type: sourceType},
		Start:          0,
		End:            &end,
	}
}
