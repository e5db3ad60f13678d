// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package definition reads sweep definitions from YAML, TOML or HCL files and
// turns them into sweep items.
//
// A definition is an ordered list of params. Each param is a skip marker, a
// single value, a list of values or a value source, with an optional key:
//
//	name: example
//	params:
//	  - value: command
//	  - key: --a
//	    values: [zero, one]
//	  - key: --b
//	    source:
//	      type: range
//	      end: 2
package definition
