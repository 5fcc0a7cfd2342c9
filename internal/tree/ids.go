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
	"fmt"

	"fortio.org/safecast"
)

// NodeID addresses a node in a [Tree]. The zero value denotes no node.
type NodeID uint32

// NoNode is the invalid [NodeID].
const NoNode NodeID = 0

// Valid reports whether the id denotes a node.
func (id NodeID) Valid() bool { return id != NoNode }

// Symbol identifies a resolved variable binding. The zero value is unresolved.
type Symbol uint32

// NoSymbol marks an identifier without resolved binding.
const NoSymbol Symbol = 0

// arena stores values addressed by 1-based indices.
type arena[T any] struct {
	data []T
}

// allocate appends value and returns its 1-based index.
func (a *arena[T]) allocate(value T) uint32 {
	a.data = append(a.data, value)

	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}

	return n
}

// get returns a pointer to the value at index, or nil for index 0.
func (a *arena[T]) get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}

	return &a.data[index-1]
}

func (a *arena[T]) len() int { return len(a.data) }
