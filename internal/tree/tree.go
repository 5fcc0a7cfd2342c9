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

import (
	"iter"
	"slices"
)

// Tree is an immutable statement tree.
type Tree struct {
	nodes    arena[Node]
	blocks   arena[Block]
	decls    arena[VarDecl]
	loops    arena[ForEach]
	assigns  arena[Assign]
	binaries arena[Binary]
	idents   arena[Ident]
	literals arena[Literal]
	others   arena[Other]
	root     NodeID
}

// Root returns the root node of the tree.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return t.nodes.len() }

// Node returns the kind-independent part of node id.
// The zero [Node] with [KindInvalid] is returned for invalid ids.
func (t *Tree) Node(id NodeID) Node {
	if n := t.nodes.get(uint32(id)); n != nil {
		return *n
	}

	return Node{}
}

// Kind returns the kind of node id.
func (t *Tree) Kind(id NodeID) Kind { return t.Node(id).Kind }

// Parent returns the owner of node id.
func (t *Tree) Parent(id NodeID) NodeID { return t.Node(id).Parent }

func payload[T any](t *Tree, a *arena[T], id NodeID, kind Kind) (T, bool) {
	var zero T

	n := t.nodes.get(uint32(id))
	if n == nil || n.Kind != kind {
		return zero, false
	}

	p := a.get(n.payload)
	if p == nil {
		return zero, false
	}

	return *p, true
}

// Block returns the payload of a [KindBlock] node.
func (t *Tree) Block(id NodeID) (Block, bool) { return payload(t, &t.blocks, id, KindBlock) }

// VarDecl returns the payload of a [KindVarDecl] node.
func (t *Tree) VarDecl(id NodeID) (VarDecl, bool) { return payload(t, &t.decls, id, KindVarDecl) }

// ForEach returns the payload of a [KindForEach] node.
func (t *Tree) ForEach(id NodeID) (ForEach, bool) { return payload(t, &t.loops, id, KindForEach) }

// Assign returns the payload of a [KindAssign] node.
func (t *Tree) Assign(id NodeID) (Assign, bool) { return payload(t, &t.assigns, id, KindAssign) }

// Binary returns the payload of a [KindBinary] node.
func (t *Tree) Binary(id NodeID) (Binary, bool) { return payload(t, &t.binaries, id, KindBinary) }

// Ident returns the payload of a [KindIdent] node.
func (t *Tree) Ident(id NodeID) (Ident, bool) { return payload(t, &t.idents, id, KindIdent) }

// Literal returns the payload of a [KindLiteral] node.
func (t *Tree) Literal(id NodeID) (Literal, bool) { return payload(t, &t.literals, id, KindLiteral) }

// Other returns the payload of a [KindOther] node.
func (t *Tree) Other(id NodeID) (Other, bool) { return payload(t, &t.others, id, KindOther) }

// Preceding returns the statement immediately before stmt in its enclosing block,
// or [NoNode] when stmt is the first statement or not contained in a block.
func (t *Tree) Preceding(stmt NodeID) NodeID {
	n := t.Node(stmt)
	if n.Ordinal == 0 {
		return NoNode
	}

	block, ok := t.Block(n.Parent)
	if !ok || n.Ordinal >= len(block.Stmts) {
		return NoNode
	}

	return block.Stmts[n.Ordinal-1]
}

// Statements returns the statements of a loop body: the statements of a [Block],
// or the body itself when it is a single statement.
func (t *Tree) Statements(body NodeID) []NodeID {
	if !body.Valid() {
		return nil
	}

	if block, ok := t.Block(body); ok {
		return block.Stmts
	}

	return []NodeID{body}
}

// Children returns the nodes directly owned by id, in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	switch kind := t.Kind(id); kind {
	case KindBlock:
		b, _ := t.Block(id)

		return b.Stmts

	case KindVarDecl:
		d, _ := t.VarDecl(id)

		var children []NodeID
		for _, f := range d.Fragments {
			if f.Init.Valid() {
				children = append(children, f.Init)
			}
		}

		return children

	case KindForEach:
		l, _ := t.ForEach(id)

		return validNodes(l.Collection, l.Body)

	case KindAssign:
		a, _ := t.Assign(id)

		return validNodes(a.Target, a.Value)

	case KindBinary:
		b, _ := t.Binary(id)

		return validNodes(b.X, b.Y)

	case KindOther:
		o, _ := t.Other(id)

		return o.Children

	case KindIdent, KindLiteral, KindInvalid:
		return nil

	default:
		panic("unknown node kind " + kind.String())
	}
}

func validNodes(ids ...NodeID) []NodeID {
	return slices.DeleteFunc(ids, func(id NodeID) bool { return !id.Valid() })
}

// Preorder yields id and all its descendants in depth-first preorder.
func (t *Tree) Preorder(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		t.preorder(id, yield)
	}
}

func (t *Tree) preorder(id NodeID, yield func(NodeID) bool) bool {
	if !id.Valid() {
		return true
	}

	if !yield(id) {
		return false
	}

	for _, child := range t.Children(id) {
		if !t.preorder(child, yield) {
			return false
		}
	}

	return true
}

// Loops yields all [KindForEach] nodes of the tree in preorder.
func (t *Tree) Loops() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for id := range t.Preorder(t.root) {
			if t.Kind(id) == KindForEach && !yield(id) {
				return
			}
		}
	}
}

// References reports whether the subtree rooted at id mentions variable v,
// either as a reference or as a declaration.
func (t *Tree) References(id NodeID, v Ident) bool {
	for n := range t.Preorder(id) {
		switch t.Kind(n) {
		case KindIdent:
			if i, _ := t.Ident(n); i.Same(v) {
				return true
			}

		case KindOther:
			o, _ := t.Other(n)
			if slices.ContainsFunc(o.Refs, v.Same) {
				return true
			}

		case KindForEach:
			if l, _ := t.ForEach(n); l.Var.Ident().Same(v) {
				return true
			}

		case KindVarDecl:
			d, _ := t.VarDecl(n)
			if slices.ContainsFunc(d.Fragments, func(f Fragment) bool { return f.Ident().Same(v) }) {
				return true
			}
		}
	}

	return false
}
