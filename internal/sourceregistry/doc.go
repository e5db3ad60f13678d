// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sourceregistry provides a registry for value source types and their builders.
// A definition file refers to a source by its type; the registry turns the source
// block into a sweep.GeneratorFunc.
package sourceregistry
