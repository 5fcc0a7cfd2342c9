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

package tree

import "fillmore-labs.com/sumfold/internal/lattice"

// Node is the kind-independent part of a tree node.
type Node struct {
	Kind Kind

	// Parent is the node owning this one, NoNode for the root.
	Parent NodeID

	// Ordinal is the position of a statement within its enclosing [Block].
	// It is zero for nodes not directly contained in a block.
	Ordinal int

	payload uint32
}

// Block is an ordered statement sequence.
type Block struct {
	Stmts []NodeID
}

// Ident is a reference to a variable.
type Ident struct {
	Name   string
	Symbol Symbol
}

// Same reports whether both identifiers denote the same variable.
// Resolved symbols are compared when both are available, names otherwise.
func (i Ident) Same(o Ident) bool {
	if i.Symbol != NoSymbol && o.Symbol != NoSymbol {
		return i.Symbol == o.Symbol
	}

	return i.Name == o.Name
}

// Variable is a declared variable together with its declared type.
type Variable struct {
	Name   string
	Symbol Symbol
	Type   lattice.Descriptor
}

// Ident returns the reference form of the variable.
func (v Variable) Ident() Ident { return Ident{Name: v.Name, Symbol: v.Symbol} }

// Fragment is a single variable of a (possibly comma-joined) declaration.
type Fragment struct {
	Variable

	// Init is the initializer expression, NoNode when absent.
	Init NodeID
}

// VarDecl is a declaration statement with one or more fragments.
type VarDecl struct {
	Fragments []Fragment
}

// ForEach is a traversal over the elements of a collection.
type ForEach struct {
	// Var is the loop variable.
	Var Variable

	// Collection is the iterated expression.
	Collection NodeID

	// Elem is the collection's declared element type.
	Elem lattice.Descriptor

	// Body is either a [Block] or a single statement.
	Body NodeID

	// Braced records a brace-delimited body. It carries no semantics.
	Braced bool
}

// AssignOp is the operator of an [Assign].
type AssignOp uint8

const (
	// AssignPlain is `target = value`.
	AssignPlain AssignOp = iota

	// AssignAdd is `target += value`.
	AssignAdd

	// AssignOther is any other compound assignment.
	AssignOther
)

// Assign is an assignment statement.
type Assign struct {
	Op     AssignOp
	Target NodeID
	Value  NodeID
}

// BinaryOp is the operator of a [Binary].
type BinaryOp uint8

const (
	// OpAdd is addition.
	OpAdd BinaryOp = iota

	// OpOther is any other binary operator.
	OpOther
)

// Binary is a binary expression `X op Y`.
type Binary struct {
	Op   BinaryOp
	X, Y NodeID
}

// LitKind classifies literals.
type LitKind uint8

const (
	// LitOther is a non-numeric literal.
	LitOther LitKind = iota

	// LitInt is an integer literal.
	LitInt

	// LitFloat is a floating point literal.
	LitFloat
)

// Literal is a literal with its source text preserved.
type Literal struct {
	Kind LitKind
	Text string
}

// Other is an opaque statement or expression.
type Other struct {
	// Refs are the variables referenced directly by this node.
	Refs []Ident

	// Children are nested nodes, e.g. the blocks of an if statement.
	Children []NodeID
}
