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

// Package lower converts type-checked Go function bodies into statement trees.
//
// The lowering is deliberately partial: only constructs the analysis can reason
// about get dedicated node kinds. Everything else becomes an opaque node that
// records the variables it references and keeps nested blocks, so loops inside
// if statements, switch cases or function literals are still visible.
//
// Range loops are lowered to [tree.KindForEach] only when they:
//
//   - declare their variables with :=
//   - discard the index (`for _, v := range`)
//   - iterate over a slice
//   - are not labeled
//
// Ranges over maps, arrays, strings, channels, integers and functions stay opaque.
package lower

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sumfold/internal/lattice"
	"fillmore-labs.com/sumfold/internal/tree"
)

// Func lowers a function body, given as the cursor of its block statement.
func Func(info *types.Info, body inspector.Cursor) (*tree.Tree, *Index) {
	l := lowerer{
		info:  info,
		b:     tree.NewBuilder(),
		index: newIndex(body.Inspector()),
	}

	root := l.block(body, edge.BlockStmt_List)

	return l.b.Tree(root), l.index
}

type lowerer struct {
	info  *types.Info
	b     *tree.Builder
	index *Index
}

// block lowers the statements of owner held in the list edge.
func (l *lowerer) block(owner inspector.Cursor, list edge.Kind) tree.NodeID {
	var stmts []tree.NodeID

	for c := range owner.Children() {
		if kind, _ := c.ParentEdge(); kind == list {
			stmts = append(stmts, l.stmt(c))
		}
	}

	return l.index.record(l.b.Block(stmts...), owner)
}

func (l *lowerer) stmt(c inspector.Cursor) tree.NodeID {
	switch s := c.Node().(type) {
	case *ast.BlockStmt:
		return l.block(c, edge.BlockStmt_List)

	case *ast.DeclStmt:
		if id, ok := l.declStmt(c); ok {
			return id
		}

	case *ast.AssignStmt:
		if id, ok := l.assignStmt(c, s); ok {
			return id
		}

	case *ast.RangeStmt:
		if id, ok := l.rangeStmt(c, s); ok {
			return id
		}
	}

	return l.other(c)
}

// declStmt lowers `var` declarations. Every declared name becomes one fragment.
func (l *lowerer) declStmt(c inspector.Cursor) (tree.NodeID, bool) {
	g := c.ChildAt(edge.DeclStmt_Decl, -1)

	decl, ok := g.Node().(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR {
		return tree.NoNode, false
	}

	var fragments []tree.Fragment

	for i, spec := range decl.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok || (len(vspec.Values) != 0 && len(vspec.Values) != len(vspec.Names)) {
			return tree.NoNode, false // multi-value initializer
		}

		sc := g.ChildAt(edge.GenDecl_Specs, i)

		for j, id := range vspec.Names {
			v, ok := l.variable(id)
			if !ok {
				return tree.NoNode, false
			}

			var init tree.NodeID
			if len(vspec.Values) > 0 {
				init = l.expr(sc.ChildAt(edge.ValueSpec_Values, j))
			} else {
				init = l.implicitZero(v.Type)
			}

			fragments = append(fragments, tree.Fragment{Variable: v, Init: init})
		}
	}

	if len(fragments) == 0 {
		return tree.NoNode, false
	}

	return l.index.record(l.b.VarDecl(fragments...), c), true
}

// implicitZero returns the zero literal of variables declared without initializer.
func (l *lowerer) implicitZero(typ lattice.Descriptor) tree.NodeID {
	if !numeric[typ.Name] {
		return tree.NoNode
	}

	return l.b.Literal(tree.LitInt, "0")
}

func (l *lowerer) assignStmt(c inspector.Cursor, s *ast.AssignStmt) (tree.NodeID, bool) {
	if s.Tok == token.DEFINE {
		return l.shortVarDecl(c, s)
	}

	if len(s.Lhs) != 1 || len(s.Rhs) != 1 {
		return tree.NoNode, false
	}

	var op tree.AssignOp

	switch s.Tok {
	case token.ASSIGN:
		op = tree.AssignPlain

	case token.ADD_ASSIGN:
		op = tree.AssignAdd

	default:
		op = tree.AssignOther
	}

	target, value := l.expr(c.ChildAt(edge.AssignStmt_Lhs, 0)), l.expr(c.ChildAt(edge.AssignStmt_Rhs, 0))

	return l.index.record(l.b.Assign(op, target, value), c), true
}

// shortVarDecl lowers `a, b := x, y` when all names are new variables.
func (l *lowerer) shortVarDecl(c inspector.Cursor, s *ast.AssignStmt) (tree.NodeID, bool) {
	if len(s.Lhs) != len(s.Rhs) {
		return tree.NoNode, false
	}

	fragments := make([]tree.Fragment, 0, len(s.Lhs))

	for i, lhs := range s.Lhs {
		id, ok := lhs.(*ast.Ident)
		if !ok {
			return tree.NoNode, false
		}

		v, ok := l.variable(id)
		if !ok {
			return tree.NoNode, false // redeclaration assigns an existing variable
		}

		fragments = append(fragments, tree.Fragment{Variable: v, Init: l.expr(c.ChildAt(edge.AssignStmt_Rhs, i))})
	}

	return l.index.record(l.b.VarDecl(fragments...), c), true
}

func (l *lowerer) rangeStmt(c inspector.Cursor, s *ast.RangeStmt) (tree.NodeID, bool) {
	if s.Tok != token.DEFINE || !isBlank(s.Key) {
		return tree.NoNode, false
	}

	value, ok := s.Value.(*ast.Ident)
	if !ok || value.Name == "_" {
		return tree.NoNode, false
	}

	typ := l.info.TypeOf(s.X)
	if typ == nil {
		return tree.NoNode, false
	}

	slice, ok := typ.Underlying().(*types.Slice)
	if !ok {
		return tree.NoNode, false
	}

	v, ok := l.variable(value)
	if !ok {
		return tree.NoNode, false
	}

	loop := tree.ForEach{
		Var:        v,
		Collection: l.expr(c.ChildAt(edge.RangeStmt_X, -1)),
		Elem:       Describe(slice.Elem()),
		Body:       l.block(c.ChildAt(edge.RangeStmt_Body, -1), edge.BlockStmt_List),
		Braced:     true,
	}

	return l.index.record(l.b.ForEach(loop), c), true
}

func isBlank(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)

	return ok && id.Name == "_"
}

// variable returns the variable defined by id.
func (l *lowerer) variable(id *ast.Ident) (tree.Variable, bool) {
	v, ok := l.info.Defs[id].(*types.Var)
	if !ok {
		return tree.Variable{}, false
	}

	return tree.Variable{
		Name:   id.Name,
		Symbol: l.index.symbol(v),
		Type:   Describe(v.Type()),
	}, true
}

func (l *lowerer) expr(c inspector.Cursor) tree.NodeID {
	switch e := c.Node().(type) {
	case *ast.Ident:
		if v, ok := l.info.ObjectOf(e).(*types.Var); ok {
			return l.index.record(l.b.Ident(e.Name, l.index.symbol(v)), c)
		}

	case *ast.BasicLit:
		kind := tree.LitOther

		switch e.Kind {
		case token.INT:
			kind = tree.LitInt

		case token.FLOAT:
			kind = tree.LitFloat
		}

		return l.index.record(l.b.Literal(kind, e.Value), c)

	case *ast.BinaryExpr:
		op := tree.OpOther
		if e.Op == token.ADD {
			op = tree.OpAdd
		}

		x, y := l.expr(c.ChildAt(edge.BinaryExpr_X, -1)), l.expr(c.ChildAt(edge.BinaryExpr_Y, -1))

		return l.index.record(l.b.Binary(op, x, y), c)
	}

	return l.other(c)
}

// other lowers c as an opaque node, keeping referenced variables and nested blocks.
func (l *lowerer) other(c inspector.Cursor) tree.NodeID {
	var (
		refs     []tree.Ident
		children []tree.NodeID
	)

	c.Inspect(nil, func(n inspector.Cursor) bool {
		if kind, _ := n.ParentEdge(); n != c && (kind == edge.CaseClause_Body || kind == edge.CommClause_Body) {
			return false // lowered with the clause
		}

		switch node := n.Node().(type) {
		case *ast.BlockStmt:
			children = append(children, l.block(n, edge.BlockStmt_List))

			return false

		case *ast.CaseClause:
			children = append(children, l.block(n, edge.CaseClause_Body))

		case *ast.CommClause:
			children = append(children, l.block(n, edge.CommClause_Body))

		case *ast.Ident:
			if v, ok := l.info.ObjectOf(node).(*types.Var); ok {
				refs = append(refs, tree.Ident{Name: node.Name, Symbol: l.index.symbol(v)})
			}
		}

		return true
	})

	return l.index.record(l.b.Other(refs, children...), c)
}
