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
	"go/types"

	"fillmore-labs.com/sumfold/internal/lattice"
)

// numeric holds the canonical names of Go's predeclared numeric types.
var numeric = func() map[string]bool {
	m := make(map[string]bool)

	for _, t := range types.Typ {
		if t != nil && t.Info()&types.IsNumeric != 0 && t.Info()&types.IsUntyped == 0 {
			m[t.Name()] = true
		}
	}

	return m
}()

// Describe returns the type descriptor of a Go type.
//
// Predeclared numeric types are described by their canonical name (byte is
// uint8, rune is int32). Defined types with a numeric underlying type are
// boxed forms of that name. Other types are described by their type string
// and never classify as numeric with the default table.
func Describe(t types.Type) lattice.Descriptor {
	if t == nil {
		return lattice.Descriptor{}
	}

	t = types.Unalias(t)

	basic, ok := t.Underlying().(*types.Basic)
	if !ok || !numeric[types.Typ[basic.Kind()].Name()] {
		return lattice.Descriptor{Name: types.TypeString(t, nil)}
	}

	_, defined := t.(*types.Named)

	return lattice.Descriptor{Name: types.Typ[basic.Kind()].Name(), Boxed: defined}
}
