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

// Package lint hosts item passes over a [hir.Crate].
//
// A pass declares its [Lint] metadata and inspects one item at a time,
// emitting [Diagnostic]s into a [Sink]. [Run] drives all passes over every
// item of a crate.
package lint

import "fillmore-labs.com/emptydrop/internal/hir"

// Lint is the static description of a lint.
type Lint struct {
	// Name is the lint name used in allow lists and as diagnostic category.
	Name string

	// Level is the default level of the lint.
	Level Level

	// Desc is a one line description.
	Desc string

	// Group is the lint group, e.g. "correctness".
	Group string
}

// Diagnostic returns a [Diagnostic] for this lint at the lint's default level.
func (l *Lint) Diagnostic(span hir.Span, message, help string) Diagnostic {
	return Diagnostic{
		Span:    span,
		Lint:    l,
		Level:   l.Level,
		Message: message,
		Help:    help,
	}
}

// ItemPass checks top-level items.
//
// Implementations must be safe for concurrent use; [Run] calls CheckItem from multiple goroutines.
type ItemPass interface {
	Lint() *Lint
	CheckItem(item hir.Item, sink Sink)
}
