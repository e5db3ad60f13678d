// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package directories provides the directories source.
package directories

import "github.com/matt-FFFFFF/broom/internal/sourceregistry"

const sourceType = "directories"

// Register registers the source in the given registry.
func Register(r sourceregistry.Registry) {
	r.Register(sourceType, &Source{})
}
