// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package glob

import "github.com/matt-FFFFFF/broom/internal/sources"

// Definition represents the configuration for the glob source.
type Definition struct {
	sources.BaseDefinition `yaml:",inline"`
	// Pattern is a filepath.Match pattern. ${key} references are replaced by
	// the values chosen so far.
	Pattern string `yaml:"pattern" toml:"pattern"`
	// WorkingDirectory is the base of relative patterns. Matches of a relative
	// pattern are relative to it.
	WorkingDirectory string `yaml:"working_directory,omitempty" toml:"working_directory"`
}
