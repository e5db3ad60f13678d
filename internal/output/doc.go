// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package output writes combinations as text lines, JSON lines, a YAML
// document or a table.
package output
