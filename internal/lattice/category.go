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
	"errors"
	"fmt"
	"strings"
)

// Category is the numeric classification of a value type.
type Category uint8

//go:generate go tool stringer -type Category -linecomment
const (
	// Unsupported covers every type without a numeric reduction path.
	Unsupported Category = iota // unsupported

	// IntegerNarrow covers sub-word integer kinds (8 and 16 bit).
	IntegerNarrow // narrow-int

	// Int32 is the 32-bit signed integer category.
	Int32 // int32

	// Int64 is the 64-bit signed integer category.
	Int64 // int64

	// Float64 is the double precision floating point category.
	Float64 // float64

	// FloatNarrow is the single precision floating point category.
	FloatNarrow // narrow-float
)

// ErrUnknownCategory is returned when parsing an unknown category name.
var ErrUnknownCategory = errors.New("unknown category")

// Supported reports whether a sum reduction primitive exists for this category.
func (c Category) Supported() bool {
	switch c {
	case Int32, Int64, Float64:
		return true

	default:
		return false
	}
}

// Compatible returns true iff a and b are the same supported category.
//
// Narrow categories are never compatible, not even with themselves: widening
// them would change the overflow and precision behavior of the sum.
func Compatible(a, b Category) bool {
	return a == b && a.Supported()
}

// MarshalText implements [encoding.TextMarshaler].
func (c Category) MarshalText() ([]byte, error) {
	if c > FloatNarrow {
		return nil, fmt.Errorf("%w %d", ErrUnknownCategory, c)
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Category) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))

	for v := Unsupported; v <= FloatNarrow; v++ {
		if v.String() == name {
			*c = v

			return nil
		}
	}

	switch name {
	case "", "none", "off":
		*c = Unsupported

	default:
		return fmt.Errorf("%w %q", ErrUnknownCategory, string(text))
	}

	return nil
}
