// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/sweep"
)

var (
	// ErrInvalidDefinition is returned when a definition cannot be turned into sweep items.
	ErrInvalidDefinition = errors.New("invalid definition")
	// ErrParam is returned for each param that cannot be turned into a sweep item.
	ErrParam = errors.New("invalid param")
	// ErrNoParams is returned when a definition has no params.
	ErrNoParams = errors.New("definition has no params")
)

// Param fields.
const (
	fieldKey    = "key"
	fieldSkip   = "skip"
	fieldValue  = "value"
	fieldValues = "values"
	fieldSource = "source"
)

var knownFields = []string{fieldKey, fieldSkip, fieldValue, fieldValues, fieldSource}

// Definition represents a sweep definition file.
type Definition struct {
	Name        string  `yaml:"name" toml:"name"`
	Description string  `yaml:"description,omitempty" toml:"description"`
	Delimiter   *string `yaml:"delimiter,omitempty" toml:"delimiter"`
	Assignment  *string `yaml:"assignment,omitempty" toml:"assignment"`
	// Params are kept as generic maps so that a value can be told apart from an absent one.
	Params []map[string]any `yaml:"params" toml:"param"`
}

// JoinOptions returns the join options set by the definition.
func (d *Definition) JoinOptions() []sweep.JoinOption {
	var opts []sweep.JoinOption

	if d.Delimiter != nil {
		opts = append(opts, sweep.WithDelimiter(*d.Delimiter))
	}

	if d.Assignment != nil {
		opts = append(opts, sweep.WithAssignment(*d.Assignment))
	}

	return opts
}

// Items converts the params into sweep items, building sources with the registry.
// Every invalid param is reported.
func (d *Definition) Items(ctx context.Context, r sourceregistry.Registry) ([]sweep.Item, error) {
	if len(d.Params) == 0 {
		return nil, errors.Join(ErrInvalidDefinition, ErrNoParams)
	}

	var result error

	items := make([]sweep.Item, 0, len(d.Params))

	for i, p := range d.Params {
		item, err := paramItem(ctx, r, p)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%w %d%s: %w", ErrParam, i+1, describe(p), err))
			continue
		}

		items = append(items, item)
	}

	if result != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, result)
	}

	return items, nil
}

func describe(p map[string]any) string {
	if k, ok := p[fieldKey]; ok {
		return fmt.Sprintf(" (%v)", k)
	}

	return ""
}

func paramItem(ctx context.Context, r sourceregistry.Registry, p map[string]any) (sweep.Item, error) {
	for _, f := range slices.Sorted(maps.Keys(p)) {
		if !slices.Contains(knownFields, f) {
			return nil, fmt.Errorf("%w: unknown field %q", sweep.ErrShape, f)
		}
	}

	if skip, ok := p[fieldSkip]; ok {
		b, isBool := skip.(bool)
		if !isBool {
			return nil, fmt.Errorf("%w: skip must be true or false", sweep.ErrShape)
		}

		if b {
			return sweep.Skip(), nil
		}
	}

	spec, err := paramSpec(ctx, r, p)
	if err != nil {
		return nil, err
	}

	raw, ok := p[fieldKey]
	if !ok {
		return sweep.Anonymous(spec), nil
	}

	key, ok := raw.(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("%w: key must be a non-empty string", sweep.ErrShape)
	}

	return sweep.Pair(key, spec), nil
}

func paramSpec(ctx context.Context, r sourceregistry.Registry, p map[string]any) (sweep.ValueSpec, error) {
	var set []string

	for _, f := range []string{fieldValue, fieldValues, fieldSource} {
		if _, ok := p[f]; ok {
			set = append(set, f)
		}
	}

	if len(set) != 1 {
		return nil, fmt.Errorf("%w: need exactly one of value, values or source, got %d", sweep.ErrShape, len(set))
	}

	switch set[0] {
	case fieldValue:
		return sweep.Value(p[fieldValue]), nil
	case fieldValues:
		vals, ok := p[fieldValues].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: values must be a list", sweep.ErrShape)
		}

		return sweep.Values(vals...), nil
	default:
		src, ok := asMap(p[fieldSource])
		if !ok {
			return nil, fmt.Errorf("%w: source must be a map", sweep.ErrShape)
		}

		if r == nil {
			return nil, fmt.Errorf("%w: no source registry", sourceregistry.ErrUnknownSourceType)
		}

		fn, err := r.Build(ctx, src)
		if err != nil {
			return nil, err
		}

		return sweep.Generator(fn), nil
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}

		return out, true
	default:
		return nil, false
	}
}
