// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import sumfold "fillmore-labs.com/sumfold/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Fix enables suggested fixes.
	Fix *bool `json:"fix,omitzero"`
	// Explain reports why loops summing into an adjacent declaration are not rewritten.
	Explain *bool `json:"explain,omitzero"`
	// Categories overrides the numeric categories of basic type names.
	Categories map[string]sumfold.Category `json:"categories,omitzero"`
}

// Options converts [Settings] into a list of [sumfold.Option] for the sumfold analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []sumfold.Option {
	var opts []sumfold.Option

	opts = appendOption(opts, s.Fix, sumfold.WithFix)
	opts = appendOption(opts, s.Explain, sumfold.WithExplain)

	if s.Categories != nil {
		opts = append(opts, sumfold.WithCategories(s.Categories))
	}

	return opts
}

// appendOption appends a non-nil setting to a [sumfold.Option] list.
func appendOption[T any](opts []sumfold.Option, value *T, constructor func(T) sumfold.Option) []sumfold.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
