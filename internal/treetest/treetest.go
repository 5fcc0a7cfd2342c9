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

// Package treetest builds statement trees for tests of the analysis core.
//
// A [Fixture] describes the statements preceding a loop and the loop itself,
// using unresolved names for variables:
//
//	treetest.Fixture{
//		Prelude: []treetest.Stmt{treetest.Decl("sum", treetest.Int32, "0")},
//		Var:     treetest.Var("n", treetest.Int32),
//		Elem:    treetest.BoxedInt32,
//		Body:    []treetest.Stmt{treetest.AddAssign("sum", "n")},
//	}
package treetest

import (
	"strings"

	"fillmore-labs.com/sumfold/internal/lattice"
	"fillmore-labs.com/sumfold/internal/tree"
)

// Frequently used type descriptors.
var (
	Int8         = lattice.Descriptor{Name: "int8"}
	Int16        = lattice.Descriptor{Name: "int16"}
	Int32        = lattice.Descriptor{Name: "int32"}
	Int64        = lattice.Descriptor{Name: "int64"}
	Float32      = lattice.Descriptor{Name: "float32"}
	Float64      = lattice.Descriptor{Name: "float64"}
	BoxedInt8    = lattice.Descriptor{Name: "int8", Boxed: true}
	BoxedInt16   = lattice.Descriptor{Name: "int16", Boxed: true}
	BoxedInt32   = lattice.Descriptor{Name: "int32", Boxed: true}
	BoxedInt64   = lattice.Descriptor{Name: "int64", Boxed: true}
	BoxedFloat32 = lattice.Descriptor{Name: "float32", Boxed: true}
	BoxedFloat64 = lattice.Descriptor{Name: "float64", Boxed: true}
)

// Table is the category table used with fixtures.
func Table() lattice.Table { return lattice.GoTable(nil) }

// Stmt adds a statement to a tree under construction.
type Stmt func(b *tree.Builder) tree.NodeID

// Fixture describes a loop and the statements preceding it.
type Fixture struct {
	Prelude    []Stmt
	Var        tree.Variable
	Elem       lattice.Descriptor
	Collection string
	Body       []Stmt
	Unbraced   bool
}

// Build assembles the fixture and returns the tree and the loop node.
func (f Fixture) Build() (*tree.Tree, tree.NodeID) {
	b := tree.NewBuilder()

	stmts := make([]tree.NodeID, 0, len(f.Prelude)+1)
	for _, s := range f.Prelude {
		stmts = append(stmts, s(b))
	}

	body := make([]tree.NodeID, 0, len(f.Body))
	for _, s := range f.Body {
		body = append(body, s(b))
	}

	var bodyID tree.NodeID
	if f.Unbraced && len(body) == 1 {
		bodyID = body[0]
	} else {
		bodyID = b.Block(body...)
	}

	collection := f.Collection
	if collection == "" {
		collection = "numbers"
	}

	loop := b.ForEach(tree.ForEach{
		Var:        f.Var,
		Collection: b.Ident(collection, tree.NoSymbol),
		Elem:       f.Elem,
		Body:       bodyID,
		Braced:     !f.Unbraced,
	})
	stmts = append(stmts, loop)

	root := b.Block(stmts...)

	return b.Tree(root), loop
}

// Var describes a loop variable.
func Var(name string, typ lattice.Descriptor) tree.Variable {
	return tree.Variable{Name: name, Type: typ}
}

// Frag is a declaration fragment. An empty init declares without initializer,
// an init starting with a letter is a non-literal initializer.
type Frag struct {
	Name string
	Type lattice.Descriptor
	Init string
}

// Decl is a single-fragment declaration `typ name = init`.
func Decl(name string, typ lattice.Descriptor, init string) Stmt {
	return DeclN(Frag{Name: name, Type: typ, Init: init})
}

// DeclN is a comma-joined declaration of several fragments.
func DeclN(frags ...Frag) Stmt {
	return func(b *tree.Builder) tree.NodeID {
		fragments := make([]tree.Fragment, 0, len(frags))
		for _, f := range frags {
			fragments = append(fragments, tree.Fragment{
				Variable: tree.Variable{Name: f.Name, Type: f.Type},
				Init:     expr(b, f.Init),
			})
		}

		return b.VarDecl(fragments...)
	}
}

// AddAssign is `target += value`.
func AddAssign(target, value string) Stmt {
	return func(b *tree.Builder) tree.NodeID {
		return b.Assign(tree.AssignAdd, b.Ident(target, tree.NoSymbol), expr(b, value))
	}
}

// AddAssignSum is `target += x + y`.
func AddAssignSum(target, x, y string) Stmt {
	return func(b *tree.Builder) tree.NodeID {
		return b.Assign(tree.AssignAdd, b.Ident(target, tree.NoSymbol), b.Binary(tree.OpAdd, expr(b, x), expr(b, y)))
	}
}

// PlainSum is `target = x + y`.
func PlainSum(target, x, y string) Stmt {
	return func(b *tree.Builder) tree.NodeID {
		return b.Assign(tree.AssignPlain, b.Ident(target, tree.NoSymbol), b.Binary(tree.OpAdd, expr(b, x), expr(b, y)))
	}
}

// PlainSum3 is `target = x + y + z`, parsed left-associative.
func PlainSum3(target, x, y, z string) Stmt {
	return func(b *tree.Builder) tree.NodeID {
		sum := b.Binary(tree.OpAdd, b.Binary(tree.OpAdd, expr(b, x), expr(b, y)), expr(b, z))

		return b.Assign(tree.AssignPlain, b.Ident(target, tree.NoSymbol), sum)
	}
}

// Set is `target = value`.
func Set(target, value string) Stmt {
	return func(b *tree.Builder) tree.NodeID {
		return b.Assign(tree.AssignPlain, b.Ident(target, tree.NoSymbol), expr(b, value))
	}
}

// Call is an opaque statement referencing the given variables.
func Call(refs ...string) Stmt {
	return func(b *tree.Builder) tree.NodeID {
		idents := make([]tree.Ident, 0, len(refs))
		for _, r := range refs {
			idents = append(idents, tree.Ident{Name: r})
		}

		return b.Other(idents)
	}
}

// expr is a literal for numeric text, an identifier otherwise.
func expr(b *tree.Builder, text string) tree.NodeID {
	switch {
	case text == "":
		return tree.NoNode

	case strings.ContainsAny(text[:1], "0123456789"):
		kind := tree.LitInt
		if strings.ContainsAny(text, ".dDfF") && !strings.HasPrefix(text, "0x") {
			kind = tree.LitFloat
		}

		return b.Literal(kind, text)

	default:
		return b.Ident(text, tree.NoSymbol)
	}
}
