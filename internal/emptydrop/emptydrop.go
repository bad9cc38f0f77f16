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

package emptydrop

import (
	"fillmore-labs.com/emptydrop/internal/hir"
	"fillmore-labs.com/emptydrop/internal/lint"
)

// EmptyDrop is the lint reported for empty destructor implementations.
var EmptyDrop = &lint.Lint{
	Name:  "empty_drop",
	Level: lint.Warn,
	Desc:  "empty destructor implementations",
	Group: "correctness",
}

const (
	message = "empty drop implementation"
	help    = "try removing this impl"
)

// Rule reports implementations of the destructor trait with an empty body.
type Rule struct {
	drop hir.DefID
}

// New creates a [Rule] matching implementations of the destructor trait drop.
func New(drop hir.DefID) *Rule {
	return &Rule{drop: drop}
}

// Lint implements [lint.ItemPass].
func (*Rule) Lint() *lint.Lint { return EmptyDrop }

// CheckItem implements [lint.ItemPass].
func (r *Rule) CheckItem(item hir.Item, sink lint.Sink) {
	if d, ok := r.Inspect(item); ok {
		sink.Emit(d)
	}
}

// Inspect returns the finding for item, if it is an empty destructor implementation.
func (r *Rule) Inspect(item hir.Item) (lint.Diagnostic, bool) {
	impl, ok := item.(*hir.Impl)
	if !ok || len(impl.Items) != 1 {
		return lint.Diagnostic{}, false
	}

	if impl.Trait == nil || !impl.Trait.Def.Valid() || impl.Trait.Def != r.drop {
		return lint.Diagnostic{}, false
	}

	fn, ok := impl.Items[0].(*hir.ImplFn)
	if !ok || fn.Body == nil {
		return lint.Diagnostic{}, false
	}

	// Only the outermost block counts, `{ {} }` has one statement.
	block, ok := fn.Body.Value.(*hir.BlockExpr)
	if !ok || block.Block == nil || !block.Empty() {
		return lint.Diagnostic{}, false
	}

	return EmptyDrop.Diagnostic(impl.Span, message, help), true
}
