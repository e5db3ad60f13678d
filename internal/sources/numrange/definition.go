// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package numrange

import "github.com/matt-FFFFFF/broom/internal/sources"

// Definition represents the configuration for the range source.
type Definition struct {
	sources.BaseDefinition `yaml:",inline"`
	// Start is the first value, defaults to 0.
	Start int `yaml:"start" toml:"start"`
	// End is the exclusive upper bound. Required.
	End *int `yaml:"end" toml:"end"`
}
