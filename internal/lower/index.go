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

package lower

import (
	"fmt"
	"go/ast"
	"go/types"

	"fortio.org/safecast"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sumfold/internal/astutil"
	"fillmore-labs.com/sumfold/internal/tree"
)

// Index maps tree nodes and symbols back to the Go syntax and objects they were lowered from.
type Index struct {
	in      *inspector.Inspector
	nodes   map[tree.NodeID]astutil.NodeIndex
	objects []*types.Var
	symbols map[*types.Var]tree.Symbol
}

func newIndex(in *inspector.Inspector) *Index {
	return &Index{
		in:      in,
		nodes:   make(map[tree.NodeID]astutil.NodeIndex),
		symbols: make(map[*types.Var]tree.Symbol),
	}
}

// NodeIndex returns the cursor index of the syntax id was lowered from,
// [astutil.InvalidNode] for synthesized nodes.
func (x *Index) NodeIndex(id tree.NodeID) astutil.NodeIndex {
	if n, ok := x.nodes[id]; ok {
		return n
	}

	return astutil.InvalidNode
}

// Node returns the Go syntax node id was lowered from, nil for synthesized nodes.
func (x *Index) Node(id tree.NodeID) ast.Node {
	return x.NodeIndex(id).Node(x.in)
}

// Object returns the variable denoted by sym.
func (x *Index) Object(sym tree.Symbol) *types.Var {
	if sym == tree.NoSymbol || int(sym) > len(x.objects) {
		return nil
	}

	return x.objects[sym-1]
}

func (x *Index) record(id tree.NodeID, c inspector.Cursor) tree.NodeID {
	x.nodes[id] = astutil.NodeIndexOf(c)

	return id
}

func (x *Index) symbol(v *types.Var) tree.Symbol {
	if sym, ok := x.symbols[v]; ok {
		return sym
	}

	sym, err := safecast.Conv[tree.Symbol](len(x.objects) + 1)
	if err != nil {
		panic(fmt.Errorf("symbol overflow: %w", err))
	}

	x.objects = append(x.objects, v)
	x.symbols[v] = sym

	return sym
}
