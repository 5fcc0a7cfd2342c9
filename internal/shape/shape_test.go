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

package shape_test

import (
	"testing"

	"fillmore-labs.com/sumfold/internal/binding"
	. "fillmore-labs.com/sumfold/internal/shape"
	tt "fillmore-labs.com/sumfold/internal/treetest"
)

func TestMatchLoop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     []tt.Stmt
		unbraced bool
		ok       bool
		form     Form
	}{
		{"compound", []tt.Stmt{tt.AddAssign("sum", "n")}, false, true, FormCompound},
		{"compoundUnbraced", []tt.Stmt{tt.AddAssign("sum", "n")}, true, true, FormCompound},
		{"expanded", []tt.Stmt{tt.PlainSum("sum", "sum", "n")}, false, true, FormExpanded},
		{"commuted", []tt.Stmt{tt.PlainSum("sum", "n", "sum")}, false, false, 0},
		{"constant", []tt.Stmt{tt.AddAssign("sum", "1")}, false, false, 0},
		{"extraOperand", []tt.Stmt{tt.AddAssignSum("sum", "n", "2")}, false, false, 0},
		{"extraOperandExpanded", []tt.Stmt{tt.PlainSum3("sum", "sum", "n", "2")}, false, false, 0},
		{"otherTarget", []tt.Stmt{tt.AddAssign("total", "n")}, false, false, 0},
		{"overwrite", []tt.Stmt{tt.Set("sum", "n")}, false, false, 0},
		{"twoStatements", []tt.Stmt{tt.AddAssign("sum", "n"), tt.Call("sum")}, false, false, 0},
		{"empty", nil, false, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := tt.Fixture{
				Prelude:  []tt.Stmt{tt.Decl("sum", tt.Int32, "0")},
				Var:      tt.Var("n", tt.Int32),
				Elem:     tt.Int32,
				Body:     tc.body,
				Unbraced: tc.unbraced,
			}

			tr, loop := f.Build()

			c := binding.Candidate{Decl: tr.Preceding(loop), Var: tt.Var("sum", tt.Int32), Identity: "0"}

			m, ok := MatchLoop(tr, loop, c)
			if ok != tc.ok {
				t.Fatalf("Got match %t, want %t", ok, tc.ok)
			}

			if ok && m.Form != tc.form {
				t.Errorf("Got form %q, want %q", m.Form, tc.form)
			}
		})
	}
}

func TestMatchShadowed(t *testing.T) {
	t.Parallel()

	f := tt.Fixture{
		Prelude: []tt.Stmt{tt.Decl("sum", tt.Int32, "0")},
		Var:     tt.Var("sum", tt.Int32),
		Elem:    tt.Int32,
		Body:    []tt.Stmt{tt.AddAssign("sum", "sum")},
	}

	tr, loop := f.Build()
	c := binding.Candidate{Decl: tr.Preceding(loop), Var: tt.Var("sum", tt.Int32), Identity: "0"}

	if _, ok := MatchLoop(tr, loop, c); ok {
		t.Error("Matched a loop variable shadowing the accumulator")
	}
}
