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
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"

	"github.com/samber/lo"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sumfold/internal/applicability"
	"fillmore-labs.com/sumfold/internal/astutil"
	"fillmore-labs.com/sumfold/internal/binding"
	"fillmore-labs.com/sumfold/internal/config"
	"fillmore-labs.com/sumfold/internal/lower"
	"fillmore-labs.com/sumfold/internal/tree"
)

// Function is the analysis result of a single function body.
type Function struct {
	// Func is the analyzed function declaration or literal.
	Func inspector.Cursor

	// Body is the function body.
	Body inspector.Cursor

	// File is the file containing the function.
	File astutil.CurrentFile

	// Tree is the lowered function body.
	Tree *tree.Tree

	// Index maps tree nodes back to Go syntax.
	Index *lower.Index

	// Findings holds the verdicts of all loops in the function body, in source order.
	Findings []applicability.Finding
}

// Name returns the name of the function, "func literal" for literals.
func (fn Function) Name() string {
	if decl, ok := fn.Func.Node().(*ast.FuncDecl); ok {
		return decl.Name.Name
	}

	return "func literal"
}

// ProcessDiagnostics emits diagnostics for the loops of a function.
//
// Eligible loops are reported with a suggested fix replacing the accumulator
// declaration and the loop by a call to lo.Sum. When explaining is enabled,
// ineligible loops accumulating into an adjacent declaration are reported with
// the reason.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, fn Function, behavior config.Behaviors) {
	defer trace.StartRegion(ctx, "Report").End()

	explain := behavior.Enabled(config.Explain)
	fix := behavior.Enabled(config.SuggestFixes) && !fn.File.Generated()

	for _, finding := range fn.Findings {
		switch {
		case finding.Verdict.IsEligible():
			reportEligible(p, fn, finding, fix)

		case explain:
			reportIneligible(p, fn, finding)
		}
	}
}

// reportEligible emits the diagnostic of a loop that can be replaced.
func reportEligible(p *analysis.Pass, fn Function, finding applicability.Finding, fix bool) {
	decl, loop, ok := syntax(fn, finding.Decl, finding.Loop)
	if !ok {
		astutil.InternalError(p, fn.Func.Node(), "Eligible loop without syntax in %s", fn.Name())

		return
	}

	if fn.File.NoLintComment(decl.Pos()) || fn.File.NoLintComment(loop.Pos()) {
		return
	}

	sum, _ := finding.Verdict.Plan()

	message := fmt.Sprintf("Loop summing into '%s' can be replaced with lo.Sum (sf:%s)", sum.Accumulator, sum.Reduction)

	diagnostic := analysis.Diagnostic{
		Pos:     decl.Pos(),
		End:     loop.End(),
		Message: message,
		Related: []analysis.RelatedInformation{{Pos: loop.Pos(), End: loop.End(), Message: "Accumulating in this loop"}},
	}

	if fix {
		if edits := createEdits(p, fn.File, decl, loop, sum); len(edits) > 0 {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: message, TextEdits: edits}}
		}
	}

	p.Report(diagnostic)
}

// reportIneligible explains why a loop accumulating into an adjacent declaration is not replaced.
func reportIneligible(p *analysis.Pass, fn Function, finding applicability.Finding) {
	l, ok := fn.Tree.ForEach(finding.Loop)
	if !ok {
		return
	}

	prev := fn.Tree.Preceding(finding.Loop)

	acc, ok := lo.Find(binding.Adjacent(fn.Tree, finding.Loop), func(v tree.Variable) bool {
		return fn.Tree.References(l.Body, v.Ident())
	})
	if !ok {
		return // the loop does not use the declaration directly preceding it
	}

	decl, loop, ok := syntax(fn, prev, finding.Loop)
	if !ok {
		astutil.InternalError(p, fn.Func.Node(), "Loop without syntax in %s", fn.Name())

		return
	}

	if fn.File.NoLintComment(decl.Pos()) || fn.File.NoLintComment(loop.Pos()) {
		return
	}

	reason := finding.Verdict.Reason()

	p.Report(analysis.Diagnostic{
		Pos:     decl.Pos(),
		End:     loop.End(),
		Message: fmt.Sprintf("Loop summing into '%s' not rewritten: %s (sf:%s)", acc.Name, reason.Description(), reason),
	})
}

// syntax returns the Go statements of an accumulator declaration and its loop.
func syntax(fn Function, declID, loopID tree.NodeID) (decl ast.Stmt, loop *ast.RangeStmt, ok bool) {
	in := fn.Body.Inspector()

	d, l := fn.Index.NodeIndex(declID), fn.Index.NodeIndex(loopID)
	if !d.Valid() || !l.Valid() {
		return nil, nil, false
	}

	decl, ok = d.Cursor(in).Node().(ast.Stmt)
	if !ok {
		return nil, nil, false
	}

	loop, ok = l.Cursor(in).Node().(*ast.RangeStmt)
	if !ok {
		return nil, nil, false
	}

	return decl, loop, true
}
