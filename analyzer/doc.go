// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the sumfold static analysis pass.
//
// # Overview
//
// sumfold detects loops that sum the elements of a slice into a freshly
// declared, zero-initialized accumulator and suggests replacing them with a
// call to [lo.Sum].
//
// # Example
//
// Before:
//
//	func total(prices []float64) float64 {
//	    var sum float64 = 0
//	    for _, p := range prices {
//	        sum += p
//	    }
//	    return sum
//	}
//
// After applying sumfold's suggested fix:
//
//	func total(prices []float64) float64 {
//	    sum := lo.Sum(prices)
//	    return sum
//	}
//
// # Eligibility
//
// A loop is replaced only when all of the following hold:
//
//   - the statement directly before the loop declares exactly one variable,
//     initialized with a numeric zero literal, which the loop uses
//   - the body consists of exactly `sum += v` or `sum = sum + v`, where v is the loop variable
//   - the element type has a sum reduction: int32, int64 (int on 64-bit platforms) or float64,
//     or a defined type with one of these as underlying type
//
// Function declarations and function literals outside of them, for example in
// package level variable initializers, are checked.
//
// Comments inside the declaration or the loop are moved in front of the
// replacement, comments trailing the declaration stay in place.
//
// Narrow types (int8, int16, uint8, uint16 and float32) are never rewritten,
// since the loop and the reduction might differ in overflow and rounding.
// Category assignments can be changed with a YAML file passed to -categories:
//
//	categories:
//	  int: int32
//	  uint32: int32
//
// # Flags
//
//   - -suggest-fixes: suggest fixes (default true)
//   - -explain: also report loops summing into an adjacent declaration that are not eligible, with the reason
//   - -generated: check generated files
//   - -categories: YAML file overriding numeric categories
//
// [lo.Sum]: https://pkg.go.dev/github.com/samber/lo#Sum
package analyzer
