// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exprsource provides the expr source, which computes the candidates of
// a key with an expr-lang expression.
package exprsource

import "github.com/matt-FFFFFF/broom/internal/sourceregistry"

const sourceType = "expr"

// Register registers the source in the given registry.
func Register(r sourceregistry.Registry) {
	r.Register(sourceType, &Source{})
}
