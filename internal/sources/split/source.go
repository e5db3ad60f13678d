// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package split

import (
	"context"
	"errors"
	"iter"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/internal/foreachproviders"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/internal/sources"
	"github.com/matt-FFFFFF/broom/sweep"
)

var _ sourceregistry.Builder = (*Source)(nil)

// Source builds generators over the parts of a delimited string.
type Source struct{}

// Create decodes the payload and returns the split generator.
func (s *Source) Create(_ context.Context, payload []byte) (sweep.GeneratorFunc, error) {
	def := new(Definition)
	if err := yaml.UnmarshalWithOptions(payload, def, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(sources.ErrYamlUnmarshal, err)
	}

	if def.Delimiter == "" {
		def.Delimiter = DefaultDelimiter
	}

	return func(_ []sweep.Key, state sweep.State) (iter.Seq[any], error) {
		str, err := sources.Expand(def.String, state)
		if err != nil {
			return nil, err
		}

		return sources.Strings(foreachproviders.SplitString(str, def.Delimiter)), nil
	}, nil
}

// Description returns a description of the source type.
func (s *Source) Description() string {
	return "Splits a string into candidates"
}

// Example returns an example definition.
func (s *Source) Example() any {
	return &Definition{
		BaseDefinition: sources.BaseDefinition{Type: sourceType},
		String:         "small,medium,large",
		Delimiter:      ",",
	}
}
