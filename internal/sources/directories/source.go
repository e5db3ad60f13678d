// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package directories

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/internal/foreachproviders"
	"github.com/matt-FFFFFF/broom/internal/fsys"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/internal/sources"
	"github.com/matt-FFFFFF/broom/sweep"
)

var _ sourceregistry.Builder = (*Source)(nil)

// ErrNegativeDepth is returned when the depth is negative.
var ErrNegativeDepth = errors.New("directories source depth must not be negative")

// Source builds generators over the directories below a path.
type Source struct{}

// Create decodes the payload and returns the directories generator.
func (s *Source) Create(_ context.Context, payload []byte) (sweep.GeneratorFunc, error) {
	def := new(Definition)
	if err := yaml.UnmarshalWithOptions(payload, def, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(sources.ErrYamlUnmarshal, err)
	}

	if def.Depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, def.Depth)
	}

	if def.Path == "" {
		def.Path = "."
	}

	return func(_ []sweep.Key, state sweep.State) (iter.Seq[any], error) {
		root, err := sources.Expand(def.Path, state)
		if err != nil {
			return nil, err
		}

		dirs, err := foreachproviders.ListDirectoriesDepth(
			fsys.FsFactory(), root, def.Depth, foreachproviders.IncludeHidden(def.IncludeHidden),
		)
		if err != nil {
			return nil, err
		}

		return sources.Strings(dirs), nil
	}, nil
}

// Description returns a description of the source type.
func (s *Source) Description() string {
	return "Yields the directories below a path, relative to it, in walk order"
}

// Example returns an example definition.
func (s *Source) Example() any {
	return &Definition{
		BaseDefinition: sources.BaseDefinition{Type: sourceType},
		Path:           "./experiments",
		Depth:          1,
	}
}
