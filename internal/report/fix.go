// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package report

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/sumfold/internal/astutil"
	"fillmore-labs.com/sumfold/internal/plan"
)

// LoPath is the import path of the package providing the reduction.
const LoPath = "github.com/samber/lo"

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// createEdits creates a suggested fix replacing the declaration with a call to lo.Sum and removing the loop.
//
// Comments trailing the declaration stay in place, other comments of the
// declaration and the loop are moved in front of the call. No fix is suggested
// when the package name is unavailable at the loop or when the call would
// change the accumulator type.
func createEdits(p *analysis.Pass, file astutil.CurrentFile, decl ast.Stmt, loop *ast.RangeStmt, sum plan.Plan) []analysis.TextEdit {
	name, imported := file.ImportName(LoPath)
	if !imported {
		name = "lo"
	}

	if !resolvesTo(p, loop.Pos(), name, imported) {
		return nil
	}

	if !sameType(p.TypesInfo, decl, loop) {
		return nil
	}

	// remove everything after the declaration line up to the loop end
	del := decl.End()

	var moved []*ast.Comment

	for comment := range file.Comments(decl.Pos(), loop.End()) {
		if comment.Pos() >= del && comment.End() <= loop.Pos() && file.SameLine(comment.Pos(), decl.End()) {
			del = comment.End()

			continue
		}

		moved = append(moved, comment)
	}

	var buf bytes.Buffer

	if len(moved) > 0 {
		indent := indentation(p, file, decl.Pos())
		for _, comment := range moved {
			buf.WriteString(comment.Text) // ignore error
			buf.WriteByte('\n')           // ignore error
			buf.WriteString(indent)       // ignore error
		}
	}

	buf.WriteString(sum.Accumulator) // ignore error
	buf.WriteString(" := ")          // ignore error
	buf.WriteString(name)            // ignore error
	buf.WriteString(".Sum(")         // ignore error

	if err := rawcfg.Fprint(&buf, p.Fset, loop.X); err != nil {
		astutil.InternalError(p, loop.X, "Can't render collection: %s", err)

		return nil
	}

	buf.WriteByte(')') // ignore error

	edits := []analysis.TextEdit{
		{Pos: decl.Pos(), End: decl.End(), NewText: buf.Bytes()},
		{Pos: del, End: loop.End()},
	}

	if !imported {
		edits = append(edits, ImportEdit(file.File(), LoPath))
	}

	return edits
}

// indentation returns the leading white space of the line containing pos.
func indentation(p *analysis.Pass, file astutil.CurrentFile, pos token.Pos) string {
	start := file.LineStart(pos)

	if p.ReadFile != nil {
		tf := p.Fset.File(pos)
		if content, err := p.ReadFile(tf.Name()); err == nil && tf.Offset(pos) <= len(content) {
			line := string(content[tf.Offset(start):tf.Offset(pos)])

			return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		}
	}

	return strings.Repeat("\t", int(pos-start))
}

// resolvesTo checks that name denotes the imported package at pos, or nothing when not imported yet.
func resolvesTo(p *analysis.Pass, pos token.Pos, name string, imported bool) bool {
	if name == "." || name == "_" {
		return false
	}

	scope := p.Pkg.Scope().Innermost(pos)
	if scope == nil {
		return false
	}

	_, obj := scope.LookupParent(name, pos)

	if !imported {
		return obj == nil
	}

	pkg, ok := obj.(*types.PkgName)

	return ok && pkg.Imported().Path() == LoPath
}

// sameType checks that lo.Sum over the collection yields the accumulator type.
func sameType(info *types.Info, decl ast.Stmt, loop *ast.RangeStmt) bool {
	value, ok := loop.Value.(*ast.Ident)
	if !ok {
		return false
	}

	acc := accumulator(info, decl)
	elem := info.ObjectOf(value)

	return acc != nil && elem != nil && types.Identical(acc.Type(), elem.Type())
}

// accumulator returns the single variable declared by decl.
func accumulator(info *types.Info, decl ast.Stmt) types.Object {
	var id *ast.Ident

	switch n := decl.(type) {
	case *ast.AssignStmt:
		if len(n.Lhs) == 1 {
			id, _ = n.Lhs[0].(*ast.Ident)
		}

	case *ast.DeclStmt:
		if g, ok := n.Decl.(*ast.GenDecl); ok && len(g.Specs) == 1 {
			if vspec, ok := g.Specs[0].(*ast.ValueSpec); ok && len(vspec.Names) == 1 {
				id = vspec.Names[0]
			}
		}
	}

	if id == nil {
		return nil
	}

	return info.Defs[id]
}

// ImportEdit creates an edit adding an import of path to file.
func ImportEdit(file *ast.File, path string) analysis.TextEdit {
	quoted := strconv.Quote(path)

	var last *ast.GenDecl

	for _, d := range file.Decls {
		if g, ok := d.(*ast.GenDecl); ok && g.Tok == token.IMPORT {
			last = g
		}
	}

	switch {
	case last == nil:
		return analysis.TextEdit{Pos: file.Name.End(), NewText: []byte("\n\nimport " + quoted + "\n")}

	case last.Rparen.IsValid() && len(last.Specs) > 0:
		return analysis.TextEdit{Pos: last.Specs[len(last.Specs)-1].End(), NewText: []byte("\n\t" + quoted)}

	default:
		return analysis.TextEdit{Pos: last.End(), NewText: []byte("\nimport " + quoted)}
	}
}
