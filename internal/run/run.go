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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sumfold/internal/applicability"
	"fillmore-labs.com/sumfold/internal/astutil"
	"fillmore-labs.com/sumfold/internal/config"
	"fillmore-labs.com/sumfold/internal/lattice"
	"fillmore-labs.com/sumfold/internal/lower"
	"fillmore-labs.com/sumfold/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the sumfold analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("sumfold: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "SumFold")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	az := applicability.New(lattice.GoTable(p.TypesSizes).With(r.Categories))

	// Stage 1: select the function bodies to analyze
	functions := r.collectFunctions(ctx, p, in)

	// Stage 2: lower and analyze function bodies in parallel
	if err := analyzeFunctions(ctx, p.TypesInfo, az, functions); err != nil {
		return nil, err
	}

	// Stage 3: report in source order
	for _, fn := range functions {
		report.ProcessDiagnostics(ctx, p, fn, r.Behavior)
	}

	return nil, nil
}

// collectFunctions returns all function declarations with a body and the
// function literals outside of them, skipping generated files (unless enabled)
// and files or declarations marked with //nolint:sumfold.
func (r *Options) collectFunctions(ctx context.Context, p *analysis.Pass, in *inspector.Inspector) []report.Function {
	defer trace.StartRegion(ctx, "CollectFunctions").End()

	var functions []report.Function

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		// Loop over all top level functions in this file, nested literals are lowered with their enclosing body
		f.Inspect([]ast.Node{(*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)}, func(c inspector.Cursor) bool {
			var body inspector.Cursor

			switch fun := c.Node().(type) {
			case *ast.FuncDecl:
				// Skip declarations without body and functions with nolint comment
				if fun.Body == nil || astutil.DocHasNoLint(fun.Doc) {
					return false
				}

				body = c.ChildAt(edge.FuncDecl_Body, -1)

			case *ast.FuncLit:
				// Skip literals in declarations with nolint comment
				for g := range c.Enclosing((*ast.GenDecl)(nil)) {
					if astutil.DocHasNoLint(g.Node().(*ast.GenDecl).Doc) {
						return false
					}
				}

				body = c.ChildAt(edge.FuncLit_Body, -1)
			}

			functions = append(functions, report.Function{Func: c, Body: body, File: currentFile})

			return false
		})
	}

	return functions
}

// analyzeFunctions lowers every function body and evaluates all of its loops.
// Results are stored in place, so the order of functions is preserved.
func analyzeFunctions(ctx context.Context, info *types.Info, az applicability.Analyzer, functions []report.Function) error {
	defer trace.StartRegion(ctx, "AnalyzeFunctions").End()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range functions {
		fn := &functions[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			t, index := lower.Func(info, fn.Body)

			var findings []applicability.Finding
			for loop := range t.Loops() {
				findings = append(findings, az.Evaluate(t, loop))
			}

			fn.Tree, fn.Index, fn.Findings = t, index, findings

			return nil
		})
	}

	return g.Wait()
}
