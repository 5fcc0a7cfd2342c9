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

package analyzer_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "fillmore-labs.com/sumfold/analyzer"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flag string
		args []string
		want bool
	}{
		{"ExplainDefault", "explain", nil, false},
		{"Explain", "explain", []string{"-explain"}, true},
		{"FixDefault", "suggest-fixes", nil, true},
		{"NoFix", "suggest-fixes", []string{"-suggest-fixes=false"}, false},
		{"Generated", "generated", []string{"-generated=true"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()

			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			f := a.Flags.Lookup(tt.flag)
			if f == nil {
				t.Fatalf("Flag %s not registered", tt.flag)
			}

			if got := f.Value.(flag.Getter).Get(); got != tt.want {
				t.Errorf("Flag %s = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.SetOutput(&strings.Builder{})

	if err := a.Flags.Parse([]string{"-explain=maybe"}); err == nil {
		t.Error("Expected error for invalid boolean")
	}
}

func TestCategoriesFlag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	if err := os.WriteFile(valid, []byte("categories:\n  int: int32\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("categories:\n  int: decimal\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"Valid", valid, false},
		{"Invalid", invalid, true},
		{"Missing", filepath.Join(dir, "missing.yaml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			a.Flags.SetOutput(&strings.Builder{})

			if err := a.Flags.Parse([]string{"-categories", tt.path}); (err != nil) != tt.wantErr {
				t.Errorf("Got error %v, want error %t", err, tt.wantErr)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	a := New()

	var out strings.Builder
	a.Flags.SetOutput(&out)
	a.Flags.PrintDefaults()

	const expectedUsage = "  -suggest-fixes\n    \tsuggest fixes (default true)\n"

	if got := out.String(); !strings.Contains(got, expectedUsage) {
		t.Errorf("Got usage %q, want it to contain %q", got, expectedUsage)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithExplain(true), nil, Options{WithCategories(map[string]Category{"int": Int32})}}

	const want = "[explain=true nil=<nil> categories=[int=int32]]"

	if got := opts.LogValue().String(); got != want {
		t.Errorf("Got %s, want %s", got, want)
	}
}
