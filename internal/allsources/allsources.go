// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package allsources builds a registry holding every source type.
package allsources

import (
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/internal/sources/directories"
	"github.com/matt-FFFFFF/broom/internal/sources/exprsource"
	"github.com/matt-FFFFFF/broom/internal/sources/glob"
	"github.com/matt-FFFFFF/broom/internal/sources/mapper"
	"github.com/matt-FFFFFF/broom/internal/sources/numrange"
	"github.com/matt-FFFFFF/broom/internal/sources/split"
)

// New returns a registry with all source types registered.
func New() sourceregistry.Registry {
	return sourceregistry.New(
		directories.Register,
		exprsource.Register,
		glob.Register,
		mapper.Register,
		numrange.Register,
		split.Register,
	)
}
