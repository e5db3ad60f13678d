// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package exprsource

import "github.com/matt-FFFFFF/broom/internal/sources"

// Definition represents the configuration for the expr source.
type Definition struct {
	sources.BaseDefinition `yaml:",inline"`
	// Expression is evaluated once per branch. The environment holds `state`
	// (named values chosen so far), `keys` (the keys chosen so far, in order)
	// and `Get(name)`, which fails when the key is absent.
	Expression string `yaml:"expression" toml:"expression"`
}
