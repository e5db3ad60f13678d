// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sources holds what the value source types have in common.
// Each type lives in its own sub-package with a Definition, a Source that
// builds a sweep.GeneratorFunc from it, and a Register function for the
// source registry.
package sources
