// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fsys provides the filesystem used to read definitions, resolve file
// based value sources and write output files.
// Tests replace FsFactory with an in-memory filesystem.
package fsys

import "github.com/spf13/afero"

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
