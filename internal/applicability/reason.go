// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package applicability

// Reason explains why a loop is not eligible for rewriting.
type Reason uint8

//go:generate go tool stringer -type Reason -linecomment
const (
	// None is the reason of an eligible verdict.
	None Reason = iota // none

	// NoSingleZeroInitializedAccumulator indicates the loop is not directly preceded by a
	// single-fragment, zero-initialized declaration of a variable it accumulates into.
	NoSingleZeroInitializedAccumulator // acc

	// BodyShapeMismatch indicates the body is not exactly one accumulation of the loop variable alone.
	BodyShapeMismatch // shape

	// LoopVariableTypeMismatch indicates the loop variable's category differs from the element category.
	LoopVariableTypeMismatch // loopvar

	// UnsupportedAccumulatorType indicates there is no reduction primitive for the category.
	UnsupportedAccumulatorType // unsupported

	// AccumulatorElementTypeMismatch indicates the accumulator category differs from the element category.
	AccumulatorElementTypeMismatch // mismatch
)

// Description returns a human-readable explanation of the reason.
func (i Reason) Description() string {
	switch i {
	case None:
		return "eligible"

	case NoSingleZeroInitializedAccumulator:
		return "not preceded by a single zero-initialized accumulator declaration"

	case BodyShapeMismatch:
		return "body is not a single accumulation of the loop variable"

	case LoopVariableTypeMismatch:
		return "loop variable type converts the collection elements"

	case UnsupportedAccumulatorType:
		return "no sum reduction for this numeric type"

	case AccumulatorElementTypeMismatch:
		return "accumulator and element types differ"

	default:
		return i.String()
	}
}
