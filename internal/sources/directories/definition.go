// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package directories

import "github.com/matt-FFFFFF/broom/internal/sources"

// Definition represents the configuration for the directories source.
type Definition struct {
	sources.BaseDefinition `yaml:",inline"`
	// Path is the directory to walk, with ${key} expansion. Defaults to ".".
	Path string `yaml:"path" toml:"path"`
	// Depth limits how deep to walk, 0 means no limit.
	Depth int `yaml:"depth" toml:"depth"`
	// IncludeHidden includes directories whose name starts with a dot.
	IncludeHidden bool `yaml:"include_hidden" toml:"include_hidden"`
}
