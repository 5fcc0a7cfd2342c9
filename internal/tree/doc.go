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

// Package tree provides an immutable, index-addressed statement tree.
//
// Nodes live in an arena and are addressed by [NodeID]. Every statement
// records its enclosing [Block] and its ordinal there, so looking up the
// statement preceding a loop is an index operation, never a back pointer.
//
// Node shapes are a closed set ([Kind]); each kind has a typed payload
// retrieved through the matching accessor on [Tree]. Trees are assembled
// bottom-up with a [Builder] and are safe for concurrent readers once built.
package tree
