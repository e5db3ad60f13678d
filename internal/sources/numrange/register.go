// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package numrange provides the range source.
package numrange

import "github.com/matt-FFFFFF/broom/internal/sourceregistry"

const sourceType = "range"

// Register registers the source in the given registry.
func Register(r sourceregistry.Registry) {
	r.Register(sourceType, &Source{})
}
