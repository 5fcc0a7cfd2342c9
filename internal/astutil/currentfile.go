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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// sumfold is the name of the linter.
const sumfold = "sumfold"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// File returns the syntax tree of the file.
func (c CurrentFile) File() *ast.File {
	return c.file
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint checks whether the file's package doc ends with a //nolint:sumfold directive.
func (c CurrentFile) NoLint() bool {
	return c.file != nil && DocHasNoLint(c.file.Doc)
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// LineStart returns the position of the first character of the line containing pos.
func (c CurrentFile) LineStart(pos token.Pos) token.Pos {
	return c.handle.LineStart(c.handle.Line(pos))
}

// NoLintComment checks if a line is followed by a //nolint:sumfold comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after pos
	i := c.firstComment(pos)
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.line(comment.Pos()) != c.line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

// Comments returns the comments starting within [pos, end), in source order.
func (c CurrentFile) Comments(pos, end token.Pos) iter.Seq[*ast.Comment] {
	return func(yield func(*ast.Comment) bool) {
		if c.file == nil {
			return
		}

		// the group preceding the first one starting after pos might overlap
		for _, group := range c.file.Comments[max(c.firstComment(pos)-1, 0):] {
			if group.Pos() >= end {
				return
			}

			for _, comment := range group.List {
				if comment.Pos() < pos {
					continue
				}

				if comment.Pos() >= end || !yield(comment) {
					return
				}
			}
		}
	}
}

// SameLine checks whether pos and other are on the same line.
func (c CurrentFile) SameLine(pos, other token.Pos) bool {
	return c.line(pos) == c.line(other)
}

func (c CurrentFile) firstComment(pos token.Pos) int {
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })

	return i
}

// ImportName returns the name under which the file imports path.
// found is false when the file does not import path.
func (c CurrentFile) ImportName(path string) (name string, found bool) {
	if c.file == nil {
		return "", false
	}

	for _, spec := range c.file.Imports {
		if p, err := strconv.Unquote(spec.Path.Value); err != nil || p != path {
			continue
		}

		if spec.Name != nil {
			return spec.Name.Name, true
		}

		return path[strings.LastIndexByte(path, '/')+1:], true
	}

	return "", false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// DocHasNoLint checks whether the last line of a doc comment is a //nolint:sumfold directive.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && CommentHasNoLint(doc.List[len(doc.List)-1])
}

// CommentHasNoLint checks if the provided comment contains a `//nolint:sumfold` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == sumfold || l == "all" {
			return true
		}
	}

	return false
}
