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

package plan

import (
	"go/constant"

	"github.com/samber/lo"

	"fillmore-labs.com/sumfold/internal/tree"
)

// Replay folds values with the planned reduction, seeded with the identity.
// Replaying an eligible plan reproduces the final accumulator value of the loop it was built from.
func Replay[T int32 | int64 | float64](p Plan, values []T) T {
	seed := identity[T](p.Identity)

	switch p.Reduction {
	case Sum:
		return lo.Reduce(values, func(acc T, v T, _ int) T { return acc + v }, seed)

	default:
		return seed
	}
}

// identity converts the identity literal, zero when it is not numeric.
func identity[T int32 | int64 | float64](text string) T {
	v := tree.Literal{Kind: tree.LitFloat, Text: text}.Value()

	var zero T
	if _, ok := any(zero).(float64); ok {
		f, _ := constant.Float64Val(constant.ToFloat(v))

		return T(f)
	}

	i, _ := constant.Int64Val(constant.ToInt(v))

	return T(i)
}
