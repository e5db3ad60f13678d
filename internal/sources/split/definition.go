// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package split

import "github.com/matt-FFFFFF/broom/internal/sources"

// DefaultDelimiter is used when the definition has no delimiter.
const DefaultDelimiter = ","

// Definition represents the configuration for the split source.
type Definition struct {
	sources.BaseDefinition `yaml:",inline"`
	// String is split into candidates, after ${key} expansion.
	String string `yaml:"string" toml:"string"`
	// Delimiter separates the parts, defaults to ",".
	Delimiter string `yaml:"delimiter,omitempty" toml:"delimiter"`
}
