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

import "fmt"

// Builder assembles a [Tree] bottom-up: children are created first and
// adopted by the composite node built from them. A node can be adopted once.
type Builder struct {
	t *Tree
}

// NewBuilder creates an empty [Builder].
func NewBuilder() *Builder {
	return &Builder{t: &Tree{}}
}

func newNode[T any](b *Builder, a *arena[T], kind Kind, value T) NodeID {
	return NodeID(b.t.nodes.allocate(Node{Kind: kind, payload: a.allocate(value)}))
}

// adopt records parent as the owner of child.
func (b *Builder) adopt(parent, child NodeID, ordinal int) {
	if !child.Valid() {
		return
	}

	n := b.t.nodes.get(uint32(child))
	if n == nil {
		panic(fmt.Sprintf("adopting unknown node %d", child))
	}

	if n.Parent.Valid() {
		panic(fmt.Sprintf("node %d (%s) already owned by %d", child, n.Kind, n.Parent))
	}

	n.Parent, n.Ordinal = parent, ordinal
}

// Ident adds a variable reference.
func (b *Builder) Ident(name string, sym Symbol) NodeID {
	return newNode(b, &b.t.idents, KindIdent, Ident{Name: name, Symbol: sym})
}

// Literal adds a literal.
func (b *Builder) Literal(kind LitKind, text string) NodeID {
	return newNode(b, &b.t.literals, KindLiteral, Literal{Kind: kind, Text: text})
}

// Binary adds a binary expression owning x and y.
func (b *Builder) Binary(op BinaryOp, x, y NodeID) NodeID {
	id := newNode(b, &b.t.binaries, KindBinary, Binary{Op: op, X: x, Y: y})
	b.adopt(id, x, 0)
	b.adopt(id, y, 0)

	return id
}

// Assign adds an assignment statement owning target and value.
func (b *Builder) Assign(op AssignOp, target, value NodeID) NodeID {
	id := newNode(b, &b.t.assigns, KindAssign, Assign{Op: op, Target: target, Value: value})
	b.adopt(id, target, 0)
	b.adopt(id, value, 0)

	return id
}

// VarDecl adds a declaration statement owning the fragments' initializers.
func (b *Builder) VarDecl(fragments ...Fragment) NodeID {
	id := newNode(b, &b.t.decls, KindVarDecl, VarDecl{Fragments: fragments})
	for _, f := range fragments {
		b.adopt(id, f.Init, 0)
	}

	return id
}

// ForEach adds a loop owning its collection and body.
func (b *Builder) ForEach(loop ForEach) NodeID {
	id := newNode(b, &b.t.loops, KindForEach, loop)
	b.adopt(id, loop.Collection, 0)
	b.adopt(id, loop.Body, 0)

	return id
}

// Other adds an opaque node owning children.
func (b *Builder) Other(refs []Ident, children ...NodeID) NodeID {
	id := newNode(b, &b.t.others, KindOther, Other{Refs: refs, Children: children})
	for _, child := range children {
		b.adopt(id, child, 0)
	}

	return id
}

// Block adds a statement sequence owning stmts.
func (b *Builder) Block(stmts ...NodeID) NodeID {
	id := newNode(b, &b.t.blocks, KindBlock, Block{Stmts: stmts})
	for i, stmt := range stmts {
		b.adopt(id, stmt, i)
	}

	return id
}

// Tree finishes the tree with the given root. The [Builder] must not be used afterwards.
func (b *Builder) Tree(root NodeID) *Tree {
	t := b.t
	t.root = root
	b.t = nil

	return t
}
