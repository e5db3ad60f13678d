// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package glob provides the glob source.
package glob

import "github.com/matt-FFFFFF/broom/internal/sourceregistry"

const sourceType = "glob"

// Register registers the source in the given registry.
func Register(r sourceregistry.Registry) {
	r.Register(sourceType, &Source{})
}
