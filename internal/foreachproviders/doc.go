// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package foreachproviders lists the values a file or string based source
// iterates over: files matching a glob, directories below a path, or the parts
// of a delimited string.
package foreachproviders
