// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package split provides the split source.
package split

import "github.com/matt-FFFFFF/broom/internal/sourceregistry"

const sourceType = "split"

// Register registers the source in the given registry.
func Register(r sourceregistry.Registry) {
	r.Register(sourceType, &Source{})
}
