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

package plan_test

import (
	"math/rand/v2"
	"testing"

	"fillmore-labs.com/sumfold/internal/lattice"
	. "fillmore-labs.com/sumfold/internal/plan"
	"fillmore-labs.com/sumfold/internal/tree"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	direct := Build(tree.Variable{Name: "sum", Type: lattice.Descriptor{Name: "int64"}}, "0", lattice.Int64)
	if direct.Access != Direct || direct.Reduction != Sum || direct.Identity != "0" {
		t.Errorf("Got plan %s, want direct sum with identity 0", direct)
	}

	boxed := Build(tree.Variable{Name: "sum", Type: lattice.Descriptor{Name: "int32", Boxed: true}}, "0", lattice.Int32)
	if boxed.Access != Unboxing {
		t.Errorf("Got access %s for boxed accumulator, want %s", boxed.Access, Unboxing)
	}
}

func TestReplay(t *testing.T) {
	t.Parallel()

	p := Plan{Reduction: Sum, Identity: "0.0", Category: lattice.Float64, Accumulator: "sum"}

	r := rand.New(rand.NewPCG(1, 2))

	for range 20 {
		values := make([]float64, r.IntN(50))
		for i := range values {
			values[i] = r.NormFloat64() * 1e6
		}

		sum := 0.0
		for _, v := range values {
			sum += v
		}

		if got := Replay(p, values); got != sum {
			t.Errorf("Got replayed sum %g, want %g", got, sum)
		}
	}

	if got := Replay(p, []int64(nil)); got != 0 {
		t.Errorf("Got %d for empty collection, want 0", got)
	}
}

func TestReplaySeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity string
		want     float64
	}{
		{"zero", "0", 6},
		{"float", "1.5", 7.5},
		{"suffix", "10L", 16},
		{"hex", "0x10", 22},
		{"text", "zero", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Plan{Reduction: Sum, Identity: tt.identity, Category: lattice.Float64, Accumulator: "sum"}

			if got := Replay(p, []float64{1, 2, 3}); got != tt.want {
				t.Errorf("Got %g seeded with %q, want %g", got, tt.identity, tt.want)
			}
		})
	}

	if got := Replay(Plan{Reduction: Sum, Identity: "5"}, []int32{1, 2}); got != 8 {
		t.Errorf("Got integer sum %d seeded with 5, want 8", got)
	}
}
