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

// Package plan describes how an eligible accumulation loop is rewritten.
package plan

import (
	"fmt"

	"fillmore-labs.com/sumfold/internal/lattice"
	"fillmore-labs.com/sumfold/internal/tree"
)

// Reduction is the aggregate operation replacing the loop.
type Reduction uint8

const (
	// Sum is the running sum, the only supported reduction.
	Sum Reduction = iota
)

// String returns the name of the reduction.
func (r Reduction) String() string {
	switch r {
	case Sum:
		return "sum"

	default:
		return fmt.Sprintf("Reduction(%d)", r)
	}
}

// Access is the strategy for reading the collection elements.
type Access uint8

const (
	// Direct reads elements as they are.
	Direct Access = iota

	// WideningCast converts elements to a wider type. Never planned, since
	// loops converting at the iteration boundary are ineligible.
	WideningCast

	// Unboxing reduces over the primitive values of a boxed accumulator.
	Unboxing
)

// String returns the name of the access strategy.
func (a Access) String() string {
	switch a {
	case Direct:
		return "direct"

	case WideningCast:
		return "widening"

	case Unboxing:
		return "unboxing"

	default:
		return fmt.Sprintf("Access(%d)", a)
	}
}

// Plan is a side-effect free description of a rewrite. It holds no
// references into the syntax tree.
type Plan struct {
	Reduction Reduction

	// Identity is the zero literal seeding the reduction, verbatim from the declaration.
	Identity string

	// Access is the element access strategy.
	Access Access

	// Category is the numeric category of the accumulator.
	Category lattice.Category

	// Accumulator is the name of the accumulator variable.
	Accumulator string
}

// Build creates the [Plan] for an accumulator acc of the given category
// initialized with the identity literal.
func Build(acc tree.Variable, identity string, category lattice.Category) Plan {
	access := Direct
	if acc.Type.Boxed {
		access = Unboxing
	}

	return Plan{
		Reduction:   Sum,
		Identity:    identity,
		Access:      access,
		Category:    category,
		Accumulator: acc.Name,
	}
}

// String returns a compact description of the plan.
func (p Plan) String() string {
	return fmt.Sprintf("%s(%s, identity=%s, %s, %s)", p.Reduction, p.Accumulator, p.Identity, p.Access, p.Category)
}
