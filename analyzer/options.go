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

package analyzer

import (
	"log/slog"
	"maps"
	"slices"

	"fillmore-labs.com/sumfold/internal/config"
	"fillmore-labs.com/sumfold/internal/lattice"
	"fillmore-labs.com/sumfold/internal/run"
)

// Option configures specific behavior of a [New] sumfold analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFix is an [Option] to configure whether fixes are suggested.
func WithFix(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fix)
}

// WithExplain is an [Option] to report why loops summing into an adjacent declaration are not rewritten.
func WithExplain(explain bool) Option { return explainOption{explain: explain} }

type explainOption struct{ explain bool }

func (o explainOption) apply(r *run.Options) {
	r.Behavior.Set(config.Explain, o.explain)
}

func (o explainOption) LogAttr() slog.Attr {
	return slog.Bool("explain", o.explain)
}

// Category is the numeric category of a type for the sum reduction.
type Category = lattice.Category

// Numeric categories usable with [WithCategories].
const (
	Unsupported = lattice.Unsupported
	Int32       = lattice.Int32
	Int64       = lattice.Int64
	Float64     = lattice.Float64
)

// WithCategories is an [Option] overriding the numeric categories of basic type names,
// e.g. "int" to [Int32] for analyzing 32-bit platforms.
func WithCategories(categories map[string]Category) Option {
	return categoriesOption{categories: maps.Clone(categories)}
}

type categoriesOption struct{ categories map[string]Category }

func (o categoriesOption) apply(r *run.Options) {
	for name, category := range o.categories {
		r.SetCategory(name, category)
	}
}

func (o categoriesOption) LogAttr() slog.Attr {
	as := make([]slog.Attr, 0, len(o.categories))
	for _, name := range slices.Sorted(maps.Keys(o.categories)) {
		as = append(as, slog.String(name, o.categories[name].String()))
	}

	return slog.Attr{Key: "categories", Value: slog.GroupValue(as...)}
}
