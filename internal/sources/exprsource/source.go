// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package exprsource

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/internal/sources"
	"github.com/matt-FFFFFF/broom/sweep"
)

var _ sourceregistry.Builder = (*Source)(nil)

var (
	// ErrNoExpression is returned when the expression is empty.
	ErrNoExpression = errors.New("expr source needs an `expression`")
	// ErrCompile is returned when the expression does not compile.
	ErrCompile = errors.New("failed to compile expression")
	// ErrEvaluate is returned when the expression fails for a branch.
	ErrEvaluate = errors.New("failed to evaluate expression")
)

// Source builds generators that evaluate an expr-lang expression per branch.
type Source struct{}

// Create compiles the expression and returns its generator.
func (s *Source) Create(_ context.Context, payload []byte) (sweep.GeneratorFunc, error) {
	def := new(Definition)
	if err := yaml.UnmarshalWithOptions(payload, def, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(sources.ErrYamlUnmarshal, err)
	}

	if def.Expression == "" {
		return nil, ErrNoExpression
	}

	program, err := exprlang.Compile(def.Expression,
		exprlang.Env(environment(nil, sweep.State{})),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, errors.Join(ErrCompile, err)
	}

	return generator(program, def.Expression), nil
}

func generator(program *exprvm.Program, expression string) sweep.GeneratorFunc {
	return func(keys []sweep.Key, state sweep.State) (iter.Seq[any], error) {
		out, err := exprlang.Run(program, environment(keys, state))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrEvaluate, expression, err)
		}

		if out == nil {
			return nil, nil
		}

		return slices.Values(sources.Flatten(out)), nil
	}
}

func environment(keys []sweep.Key, state sweep.State) map[string]any {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return map[string]any{
		"state": state.Names(),
		"keys":  names,
		"Get": func(name string) (any, error) {
			return state.Lookup(name)
		},
	}
}

// Description returns a description of the source type.
func (s *Source) Description() string {
	return "Evaluates an expression against the values chosen so far; a list fans out, nil prunes the branch"
}

// Example returns an example definition.
func (s *Source) Example() any {
	return &Definition{
		BaseDefinition: sources.BaseDefinition{Type: sourceType},
		Expression:     `Get("--model") == "large" ? [8, 16] : 32`,
	}
}
