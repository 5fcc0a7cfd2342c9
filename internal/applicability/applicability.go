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

// Package applicability decides whether an accumulation loop can be rewritten
// into a sum reduction.
//
// The analysis is a single linear pass through five gates; the first failing
// gate determines the [Reason]:
//
//  1. the accumulator declaration directly precedes the loop ([NoSingleZeroInitializedAccumulator])
//  2. the body is a single accumulation of the loop variable ([BodyShapeMismatch])
//  3. the loop variable does not convert the elements ([LoopVariableTypeMismatch])
//  4. a reduction primitive exists for the categories involved ([UnsupportedAccumulatorType])
//  5. accumulator and elements share a category ([AccumulatorElementTypeMismatch])
//
// Analysis is pure: it never modifies the tree and keeps no state between loops,
// so loops may be analyzed concurrently.
package applicability

import (
	"fillmore-labs.com/sumfold/internal/binding"
	"fillmore-labs.com/sumfold/internal/lattice"
	"fillmore-labs.com/sumfold/internal/plan"
	"fillmore-labs.com/sumfold/internal/shape"
	"fillmore-labs.com/sumfold/internal/tree"
)

// Analyzer decides loop applicability using a category table.
type Analyzer struct {
	table lattice.Table
}

// New creates an [Analyzer] classifying types with table.
func New(table lattice.Table) Analyzer {
	return Analyzer{table: table}
}

// Finding is the verdict for a loop together with the nodes it was derived from.
type Finding struct {
	// Loop is the analyzed loop.
	Loop tree.NodeID

	// Decl is the resolved accumulator declaration, NoNode when resolution failed.
	Decl tree.NodeID

	// Stmt is the matched accumulation statement, NoNode when matching failed.
	Stmt tree.NodeID

	Verdict Verdict
}

// Analyze returns the applicability verdict for loop.
func (a Analyzer) Analyze(t *tree.Tree, loop tree.NodeID) Verdict {
	return a.Evaluate(t, loop).Verdict
}

// Evaluate analyzes loop and returns the verdict with the resolved nodes.
func (a Analyzer) Evaluate(t *tree.Tree, loop tree.NodeID) Finding {
	f := Finding{Loop: loop}

	l, ok := t.ForEach(loop)
	if !ok {
		f.Verdict = Ineligible(BodyShapeMismatch)

		return f
	}

	c, ok := binding.Resolve(t, loop)
	if !ok {
		f.Verdict = Ineligible(NoSingleZeroInitializedAccumulator)

		return f
	}

	f.Decl = c.Decl

	m, ok := shape.MatchLoop(t, loop, c)
	if !ok {
		f.Verdict = Ineligible(BodyShapeMismatch)

		return f
	}

	f.Stmt = m.Stmt

	accCat := a.table.Category(c.Var.Type)
	elemCat := a.table.Category(l.Elem)
	loopVarCat := a.table.Category(l.Var.Type)

	f.Verdict = verdict(c, accCat, elemCat, loopVarCat)

	return f
}

// verdict applies the type gates.
func verdict(c binding.Candidate, accCat, elemCat, loopVarCat lattice.Category) Verdict {
	if elemCat != loopVarCat {
		return Ineligible(LoopVariableTypeMismatch)
	}

	// elemCat equals loopVarCat here, so a narrow element reaches this gate
	// even when the accumulator itself is supported.
	if !accCat.Supported() || !elemCat.Supported() {
		return Ineligible(UnsupportedAccumulatorType)
	}

	if !lattice.Compatible(accCat, elemCat) {
		return Ineligible(AccumulatorElementTypeMismatch)
	}

	return Eligible(plan.Build(c.Var, c.Identity, accCat))
}
