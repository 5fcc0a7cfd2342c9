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

// Package shape matches the body of a loop against the single accumulation shape.
package shape

import (
	"fillmore-labs.com/sumfold/internal/binding"
	"fillmore-labs.com/sumfold/internal/tree"
)

// Form is the surface form of an accumulation statement.
type Form uint8

const (
	// FormCompound is `acc += v`.
	FormCompound Form = iota

	// FormExpanded is `acc = acc + v`.
	FormExpanded
)

// String returns the form as Go source pattern.
func (f Form) String() string {
	switch f {
	case FormCompound:
		return "acc += v"

	case FormExpanded:
		return "acc = acc + v"

	default:
		return "unknown"
	}
}

// Match is a matched accumulation statement.
type Match struct {
	// Stmt is the accumulation statement.
	Stmt tree.NodeID

	// Form is the surface form of Stmt. Both forms are equivalent.
	Form Form
}

// MatchLoop verifies that the body of loop consists of exactly one statement
// accumulating the loop variable alone into the candidate.
//
// The expanded form must read the accumulator first (`acc = acc + v`); the
// commuted `acc = v + acc` is rejected, since floating point addition order matters.
func MatchLoop(t *tree.Tree, loop tree.NodeID, c binding.Candidate) (Match, bool) {
	l, ok := t.ForEach(loop)
	if !ok {
		return Match{}, false
	}

	acc, elem := c.Var.Ident(), l.Var.Ident()

	if acc.Same(elem) {
		return Match{}, false // loop variable shadows the accumulator
	}

	if t.References(l.Collection, acc) {
		return Match{}, false
	}

	stmts := t.Statements(l.Body)
	if len(stmts) != 1 {
		return Match{}, false
	}

	stmt := stmts[0]

	a, ok := t.Assign(stmt)
	if !ok || !isVar(t, a.Target, acc) {
		return Match{}, false
	}

	switch a.Op {
	case tree.AssignAdd:
		if !isVar(t, a.Value, elem) {
			return Match{}, false
		}

		return Match{Stmt: stmt, Form: FormCompound}, true

	case tree.AssignPlain:
		sum, ok := t.Binary(a.Value)
		if !ok || sum.Op != tree.OpAdd || !isVar(t, sum.X, acc) || !isVar(t, sum.Y, elem) {
			return Match{}, false
		}

		return Match{Stmt: stmt, Form: FormExpanded}, true

	default:
		return Match{}, false
	}
}

// isVar reports whether node id is a plain reference to v.
func isVar(t *tree.Tree, id tree.NodeID, v tree.Ident) bool {
	i, ok := t.Ident(id)

	return ok && i.Same(v)
}
