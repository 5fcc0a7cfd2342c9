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

package tree

import (
	"go/constant"
	"go/token"
	"strings"
)

// IsZero reports whether the literal is a numeric zero in any textual form:
// 0, 0.0, 0.00, 0L, 0D, 0x0 or 0_0 all qualify.
func (l Literal) IsZero() bool {
	v := l.Value()

	return v.Kind() != constant.Unknown && constant.Sign(v) == 0
}

// Value returns the numeric value of the literal, ignoring a type suffix.
// The result is unknown for non-numeric or malformed literals.
func (l Literal) Value() constant.Value {
	var tok token.Token

	switch l.Kind {
	case LitInt:
		tok = token.INT

	case LitFloat:
		tok = token.FLOAT

	default:
		return constant.MakeUnknown()
	}

	text := trimSuffix(l.Text)
	if text == "" {
		return constant.MakeUnknown()
	}

	v := constant.MakeFromLiteral(text, tok, 0)
	if v.Kind() == constant.Unknown {
		// The literal kind is advisory: 0.0 may be recorded as an integer literal.
		other := token.FLOAT
		if tok == token.FLOAT {
			other = token.INT
		}

		v = constant.MakeFromLiteral(text, other, 0)
	}

	return v
}

// trimSuffix removes a single type suffix (long, double or float).
func trimSuffix(text string) string {
	suffixes := "lLdDfF"
	if hex := strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"); hex {
		suffixes = "lL" // d and f are hex digits
	}

	if n := len(text); n > 1 && strings.IndexByte(suffixes, text[n-1]) >= 0 {
		return text[:n-1]
	}

	return text
}
