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

package astutil

import (
	"go/ast"
	"regexp"
	"slices"
	"strings"
)

// Linter is the name of the linter in //nolint directives.
const Linter = "emptydrop"

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([\w-]+(?:\s*,\s*[\w-]+)*)`)

// NoLintLinters extracts the linter names from a //nolint comment.
func NoLintLinters(text string) (linters []string, ok bool) {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return nil, false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l != "" {
			linters = append(linters, l)
		}
	}

	return linters, true
}

// DocLinters collects the linter names of all //nolint directives in a comment group.
func DocLinters(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	var linters []string
	for _, comment := range doc.List {
		if names, ok := NoLintLinters(comment.Text); ok {
			linters = append(linters, names...)
		}
	}

	return linters
}

// CommentHasNoLint checks if the provided comment contains a `//nolint:emptydrop` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	linters, ok := NoLintLinters(comment.Text)

	return ok && (slices.Contains(linters, Linter) || slices.Contains(linters, "all"))
}
