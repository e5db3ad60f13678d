// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package glob

import (
	"context"
	"errors"
	"iter"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/internal/foreachproviders"
	"github.com/matt-FFFFFF/broom/internal/fsys"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/internal/sources"
	"github.com/matt-FFFFFF/broom/sweep"
)

var _ sourceregistry.Builder = (*Source)(nil)

// ErrNoPattern is returned when the glob source has no pattern.
var ErrNoPattern = errors.New("glob source needs a `pattern`")

// Source builds generators over the files matching a pattern.
type Source struct{}

// Create decodes the payload and returns the glob generator.
func (s *Source) Create(_ context.Context, payload []byte) (sweep.GeneratorFunc, error) {
	def := new(Definition)
	if err := yaml.UnmarshalWithOptions(payload, def, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(sources.ErrYamlUnmarshal, err)
	}

	if def.Pattern == "" {
		return nil, ErrNoPattern
	}

	return func(_ []sweep.Key, state sweep.State) (iter.Seq[any], error) {
		pattern, err := sources.Expand(def.Pattern, state)
		if err != nil {
			return nil, err
		}

		files, err := foreachproviders.ListFiles(fsys.FsFactory(), def.WorkingDirectory, pattern)
		if err != nil {
			return nil, err
		}

		return sources.Strings(files), nil
	}, nil
}

// Description returns a description of the source type.
func (s *Source) Description() string {
	return "Yields the files matching a glob pattern, sorted"
}

// Example returns an example definition.
func (s *Source) Example() any {
	return &Definition{
		BaseDefinition: sources.BaseDefinition{Type: sourceType},
		Pattern:        "data/${--dataset}/*.csv",
	}
}
