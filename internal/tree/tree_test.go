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

package tree_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/sumfold/internal/tree"
)

func TestIsZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lit  Literal
		want bool
	}{
		{Literal{Kind: LitInt, Text: "0"}, true},
		{Literal{Kind: LitFloat, Text: "0.0"}, true},
		{Literal{Kind: LitFloat, Text: "0.00"}, true},
		{Literal{Kind: LitInt, Text: "0L"}, true},
		{Literal{Kind: LitFloat, Text: "0D"}, true},
		{Literal{Kind: LitFloat, Text: "0f"}, true},
		{Literal{Kind: LitInt, Text: "0x0"}, true},
		{Literal{Kind: LitInt, Text: "0_0"}, true},
		{Literal{Kind: LitInt, Text: "0.0"}, true},
		{Literal{Kind: LitFloat, Text: "0e10"}, true},
		{Literal{Kind: LitInt, Text: "1"}, false},
		{Literal{Kind: LitInt, Text: "0x0F"}, false},
		{Literal{Kind: LitFloat, Text: "0.5"}, false},
		{Literal{Kind: LitInt, Text: "L"}, false},
		{Literal{Kind: LitOther, Text: "0"}, false},
		{Literal{Kind: LitInt, Text: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.lit.Text, func(t *testing.T) {
			t.Parallel()

			if got := tt.lit.IsZero(); got != tt.want {
				t.Errorf("IsZero(%q) = %t, want %t", tt.lit.Text, got, tt.want)
			}
		})
	}
}

func TestPreceding(t *testing.T) {
	t.Parallel()

	b := NewBuilder()

	first := b.Other(nil)
	second := b.VarDecl(Fragment{Variable: Variable{Name: "sum"}, Init: b.Literal(LitInt, "0")})
	inner := b.Block(b.Assign(AssignAdd, b.Ident("sum", NoSymbol), b.Ident("n", NoSymbol)))
	loop := b.ForEach(ForEach{Var: Variable{Name: "n"}, Collection: b.Ident("numbers", NoSymbol), Body: inner, Braced: true})
	root := b.Block(first, second, loop)

	tr := b.Tree(root)

	if got := tr.Preceding(loop); got != second {
		t.Errorf("Got preceding %d, want %d", got, second)
	}

	if got := tr.Preceding(first); got.Valid() {
		t.Errorf("Got preceding %d for first statement, want none", got)
	}

	if got := tr.Preceding(root); got.Valid() {
		t.Errorf("Got preceding %d for root, want none", got)
	}

	if got := tr.Parent(loop); got != root {
		t.Errorf("Got parent %d, want %d", got, root)
	}

	if got := slices.Collect(tr.Loops()); !slices.Equal(got, []NodeID{loop}) {
		t.Errorf("Got loops %v, want [%d]", got, loop)
	}

	if got := len(tr.Statements(inner)); got != 1 {
		t.Errorf("Got %d body statements, want 1", got)
	}

	if !tr.References(inner, Ident{Name: "sum"}) {
		t.Error("Expected body to reference sum")
	}

	if tr.References(inner, Ident{Name: "numbers"}) {
		t.Error("Expected body not to reference numbers")
	}
}

func TestIdentSame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Ident
		want bool
	}{
		{"names", Ident{Name: "x"}, Ident{Name: "x"}, true},
		{"symbols", Ident{Name: "x", Symbol: 1}, Ident{Name: "x", Symbol: 1}, true},
		{"shadowed", Ident{Name: "x", Symbol: 1}, Ident{Name: "x", Symbol: 2}, false},
		{"unresolved", Ident{Name: "x", Symbol: 1}, Ident{Name: "x"}, true},
		{"different", Ident{Name: "x"}, Ident{Name: "y"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Same(tt.b); got != tt.want {
				t.Errorf("Same(%v, %v) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAdoptTwice(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when a node is adopted twice")
		}
	}()

	b := NewBuilder()
	id := b.Ident("x", NoSymbol)
	b.Block(b.Assign(AssignPlain, id, b.Literal(LitInt, "1")))
	b.Block(id)
}

func TestAccessorKind(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	id := b.Ident("x", NoSymbol)
	tr := b.Tree(b.Block(b.Other(nil, b.Block()), id))

	if _, ok := tr.Literal(id); ok {
		t.Error("Got literal payload for an identifier")
	}

	if got, want := tr.Kind(id), KindIdent; got != want {
		t.Errorf("Got kind %s, want %s", got, want)
	}

	if got, want := tr.Kind(NoNode), KindInvalid; got != want {
		t.Errorf("Got kind %s for invalid node, want %s", got, want)
	}

	if got := tr.Len(); got != 4 {
		t.Errorf("Got %d nodes, want 4", got)
	}
}
