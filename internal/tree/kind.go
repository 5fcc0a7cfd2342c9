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

// Kind is the shape of a node.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	// KindInvalid is the kind of [NoNode].
	KindInvalid Kind = iota

	// KindBlock is a statement sequence, see [Block].
	KindBlock

	// KindVarDecl is a variable declaration statement, see [VarDecl].
	KindVarDecl

	// KindForEach is a collection traversal, see [ForEach].
	KindForEach

	// KindAssign is a plain or compound-add assignment, see [Assign].
	KindAssign

	// KindBinary is a binary expression, see [Binary].
	KindBinary

	// KindIdent is a variable reference, see [Ident].
	KindIdent

	// KindLiteral is a literal, see [Literal].
	KindLiteral

	// KindOther is any statement or expression the analysis treats as opaque, see [Other].
	KindOther
)
