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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/sumfold/internal/lattice"
)

// CategoryFile is the format of a category override file:
//
//	categories:
//	  int: int32          # analyze as 32-bit platform
//	  uint32: unsupported
//	  float32: float64
//
// Category names are those accepted by [lattice.Category.UnmarshalText].
type CategoryFile struct {
	Categories map[string]lattice.Category `yaml:"categories"`
}

// LoadCategories reads category overrides from a YAML file.
func LoadCategories(path string) (map[string]lattice.Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open category file: %w", err)
	}
	defer f.Close()

	categories, err := ParseCategories(f)
	if err != nil {
		return nil, fmt.Errorf("category file %s: %w", path, err)
	}

	return categories, nil
}

// ParseCategories decodes category overrides in [CategoryFile] format.
// An empty document yields no overrides.
func ParseCategories(r io.Reader) (map[string]lattice.Category, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file CategoryFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return file.Categories, nil
}
