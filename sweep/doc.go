// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sweep enumerates combinations of named parameter values.
//
// A sweep is an ordered list of items. Each item is a constant, a key-value
// pair or a skip marker. The value of a pair is a single value, a fixed list of
// values, or a dependent generator that computes its candidates from the values
// already chosen for earlier items of the same combination.
//
//	seq := sweep.Sweep(
//		sweep.Constant("train"),
//		sweep.Pair("--dataset", sweep.Values("small", "big")),
//		sweep.Pair("--size", sweep.Generator(
//			sweep.NewMapper("--dataset", []sweep.MapCase{
//				sweep.Case("small", 10),
//				sweep.Case("big", 1000, 2000),
//			}).Generator,
//		)),
//	)
//
//	for c, err := range seq {
//		if err != nil {
//			return err
//		}
//		fmt.Println(c) // train --dataset=small --size=10 ...
//	}
//
// Sequences are lazy: nothing is computed beyond what the consumer pulls, and
// stopping the range loop stops the enumeration.
package sweep
