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

package lattice

import (
	"go/types"
	"maps"
)

// Descriptor describes a value type at one of the three type positions of a loop:
// the accumulator, the iterated element and the loop variable.
type Descriptor struct {
	// Name is the primitive type name the category table is keyed by.
	Name string

	// Boxed marks a wrapper around the primitive type Name, e.g. a defined type
	// whose underlying type is numeric.
	Boxed bool
}

// String returns a human-readable form of the descriptor.
func (d Descriptor) String() string {
	if d.Boxed {
		return "boxed " + d.Name
	}

	return d.Name
}

// Table maps type names to categories. The zero value maps everything to [Unsupported].
//
// A Table is immutable after construction and safe for concurrent use.
type Table struct {
	categories map[string]Category
}

// NewTable creates a [Table] from a name to [Category] mapping.
func NewTable(categories map[string]Category) Table {
	return Table{categories: maps.Clone(categories)}
}

// GoTable returns the category table for Go's predeclared numeric types.
// The categories of int and uint are derived from sizes; a nil sizes value
// assumes a 64-bit word.
func GoTable(sizes types.Sizes) Table {
	categories := map[string]Category{
		"int8":    IntegerNarrow,
		"int16":   IntegerNarrow,
		"uint8":   IntegerNarrow,
		"uint16":  IntegerNarrow,
		"int32":   Int32,
		"int64":   Int64,
		"float32": FloatNarrow,
		"float64": Float64,
	}

	word := int64(8)
	if sizes != nil {
		word = sizes.Sizeof(types.Typ[types.Int])
	}

	switch word {
	case 4:
		categories["int"] = Int32

	case 8:
		categories["int"] = Int64
	}

	return Table{categories: categories}
}

// With returns a copy of t with the given overrides applied.
func (t Table) With(overrides map[string]Category) Table {
	if len(overrides) == 0 {
		return t
	}

	categories := make(map[string]Category, len(t.categories)+len(overrides))
	maps.Copy(categories, t.categories)
	maps.Copy(categories, overrides)

	return Table{categories: categories}
}

// Category classifies a type descriptor. A primitive type and its boxed form
// always map to the same category.
func (t Table) Category(d Descriptor) Category {
	return t.categories[d.Name]
}
