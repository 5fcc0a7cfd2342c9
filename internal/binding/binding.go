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

// Package binding resolves the accumulator candidate of a loop.
package binding

import "fillmore-labs.com/sumfold/internal/tree"

// Candidate is the declaration resolved as the accumulator of a loop.
type Candidate struct {
	// Decl is the declaration statement directly preceding the loop.
	Decl tree.NodeID

	// Var is the declared accumulator variable.
	Var tree.Variable

	// Init is the zero literal initializing the accumulator.
	Init tree.NodeID

	// Identity is the initializer's source text, e.g. "0", "0.0" or "0L".
	Identity string
}

// Resolve locates the accumulator candidate for loop.
//
// The statement directly preceding the loop must be a single-fragment
// declaration of a variable the loop body mentions, initialized with a numeric
// zero literal. Only this adjacent declaration is considered: a declaration
// further up, a comma-joined declaration or an assignment between declaration
// and loop make the loop ineligible.
func Resolve(t *tree.Tree, loop tree.NodeID) (Candidate, bool) {
	l, ok := t.ForEach(loop)
	if !ok {
		return Candidate{}, false
	}

	prev := t.Preceding(loop)

	decl, ok := t.VarDecl(prev)
	if !ok {
		return Candidate{}, false // first statement or not a declaration
	}

	if len(decl.Fragments) != 1 {
		return Candidate{}, false // sibling fragments may be read later
	}

	f := decl.Fragments[0]

	if !t.References(l.Body, f.Ident()) {
		return Candidate{}, false // not accumulated by this loop
	}

	lit, ok := t.Literal(f.Init)
	if !ok || !lit.IsZero() {
		return Candidate{}, false
	}

	return Candidate{
		Decl:     prev,
		Var:      f.Variable,
		Init:     f.Init,
		Identity: lit.Text,
	}, true
}

// Adjacent returns the variables declared by the statement directly preceding loop.
// It is used for reporting and does not imply eligibility.
func Adjacent(t *tree.Tree, loop tree.NodeID) []tree.Variable {
	decl, ok := t.VarDecl(t.Preceding(loop))
	if !ok {
		return nil
	}

	vars := make([]tree.Variable, 0, len(decl.Fragments))
	for _, f := range decl.Fragments {
		vars = append(vars, f.Variable)
	}

	return vars
}
