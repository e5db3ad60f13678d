// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import "strconv"

// Key identifies one slot of a combination.
// A key is either named, or anonymous with an automatically assigned index.
type Key struct {
	name  string
	index int
}

// Named returns the key with the given name.
func Named(name string) Key {
	return Key{name: name}
}

func anonymousKey(index int) Key {
	return Key{index: index}
}

// Anonymous reports whether the key was generated for a constant or anonymous item.
func (k Key) Anonymous() bool {
	return k.index > 0
}

// Name returns the key name. It is empty for anonymous keys.
func (k Key) Name() string {
	return k.name
}

// Index returns the position assigned to an anonymous key, starting at 1.
// It is zero for named keys.
func (k Key) Index() int {
	return k.index
}

// String implements fmt.Stringer.
func (k Key) String() string {
	if k.Anonymous() {
		return strconv.Itoa(k.index)
	}

	return k.name
}
