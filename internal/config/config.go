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

// Package config holds the behavioral configuration of the sumfold analyzer.
package config

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// SuggestFixes enables suggested fixes rewriting eligible loops.
	SuggestFixes

	// Explain reports loops that look like accumulations but are not eligible, with the reason.
	Explain
)

// Behaviors is the set of enabled [Behavior] options.
type Behaviors = BitMask[Behavior]

// DefaultBehavior returns the default set of enabled options.
func DefaultBehavior() Behaviors {
	return NewBitMask(SuggestFixes)
}
