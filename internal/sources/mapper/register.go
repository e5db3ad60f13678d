// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mapper provides the mapper source, which maps the value of an earlier
// key to the candidates of the current one.
package mapper

import "github.com/matt-FFFFFF/broom/internal/sourceregistry"

const sourceType = "mapper"

// Register registers the source in the given registry.
func Register(r sourceregistry.Registry) {
	r.Register(sourceType, &Source{})
}
