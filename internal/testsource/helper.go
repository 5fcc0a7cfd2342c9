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

// Package testsource provides utilities for parsing and lowering Go source code in tests.
//
// It handles the boilerplate of parsing and type-checking Go statement fragments,
// so tests of the lowering and the analysis core can be written as plain Go.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sumfold/internal/lower"
	"fillmore-labs.com/sumfold/internal/tree"
)

const testpkg = "test"

// header declares the package and the parameters available to fragments.
const header = `package ` + testpkg + `

type Meters float64

func _(
	ints []int,
	int8s []int8,
	int16s []int16,
	int32s []int32,
	int64s []int64,
	float32s []float32,
	floats []float64,
	meters []Meters,
	strs []string,
	byKey map[string]int,
	fixed [3]int,
) {
`

// Parse parses a Go source fragment into an AST.
// The provided source `src` is wrapped in the body of a function `_` within
// a package `test`. The function has slice parameters of the common numeric
// element types (ints, int8s, int16s, int32s, int64s, float32s, floats), a
// []Meters named meters where Meters is a defined float64 type, strs, a map
// byKey and an array fixed.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = firstFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Lower parses, type checks and lowers a source fragment.
func Lower(tb testing.TB, src string) (*tree.Tree, *lower.Index) {
	tb.Helper()

	fset, f, _, body := Parse(tb, src)
	_, info := Check(tb, fset, f)

	return lower.Func(info, body)
}

// FirstLoop returns the first loop lowered from a source fragment.
func FirstLoop(tb testing.TB, src string) (*tree.Tree, tree.NodeID, *lower.Index) {
	tb.Helper()

	t, index := Lower(tb, src)

	for loop := range t.Loops() {
		return t, loop, index
	}

	tb.Fatalf("No loop in source %q", src)

	return nil, tree.NoNode, nil
}

func wrapSource(src string) *bytes.Buffer {
	const (
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}
