// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mapper

import "github.com/matt-FFFFFF/broom/internal/sources"

// Definition represents the configuration for the mapper source.
type Definition struct {
	sources.BaseDefinition `yaml:",inline"`
	// On is the key whose value is mapped.
	On string `yaml:"on" toml:"on"`
	// Cases are tried in order; see sweep.Mapper for the matching rules.
	Cases []CaseDefinition `yaml:"cases" toml:"cases"`
	// Exact disables substring matching.
	Exact bool `yaml:"exact,omitempty" toml:"exact"`
	// Default is the single value used when no case matches.
	Default any `yaml:"default,omitempty" toml:"default"`
	// Defaults are the values used when no case matches.
	Defaults []any `yaml:"defaults,omitempty" toml:"defaults"`
}

// CaseDefinition maps a match string to a value or a list of values.
type CaseDefinition struct {
	Match  any   `yaml:"match" toml:"match"`
	Value  any   `yaml:"value,omitempty" toml:"value"`
	Values []any `yaml:"values,omitempty" toml:"values"`
}
