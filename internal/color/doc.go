// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decorates terminal output with ANSI escape codes.
// Colors are used for log levels and for the key column of the text output.
// Detection honours NO_COLOR and FORCE_COLOR before checking whether stderr
// is a terminal with golang.org/x/term.
package color
