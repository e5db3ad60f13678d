// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import "errors"

var (
	// ErrShape is returned when an item or value spec has an unusable shape.
	ErrShape = errors.New("invalid sweep item")
	// ErrMissingKey is returned when a generator looks up a key that is not in the state.
	// This happens when the key was skipped, is introduced later in the sweep, or never exists.
	ErrMissingKey = errors.New("key not present in state")
	// ErrNoMatch is returned by a Mapper when no case matches and no default is configured.
	ErrNoMatch = errors.New("no mapping matched")
)
