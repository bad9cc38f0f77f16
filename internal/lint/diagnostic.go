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

package lint

import (
	"cmp"
	"slices"
	"sync"

	"fillmore-labs.com/emptydrop/internal/hir"
)

// Diagnostic is a single finding of a lint.
type Diagnostic struct {
	hir.Span

	Lint    *Lint
	Level   Level
	Message string
	Help    string // optional remediation hint
}

// Sink receives diagnostics.
type Sink interface {
	Emit(d Diagnostic)
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(d Diagnostic)

// Emit implements [Sink].
func (f SinkFunc) Emit(d Diagnostic) { f(d) }

// Collector is a [Sink] gathering diagnostics. It is safe for concurrent use.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// Emit implements [Sink].
func (c *Collector) Emit(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns the collected diagnostics ordered by position and lint name.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	diagnostics := slices.Clone(c.diagnostics)
	c.mu.Unlock()

	slices.SortStableFunc(diagnostics, compareDiagnostics)

	return diagnostics
}

func compareDiagnostics(a, b Diagnostic) int {
	if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Hi, b.Hi); c != 0 {
		return c
	}

	return cmp.Compare(lintName(a.Lint), lintName(b.Lint))
}

func lintName(l *Lint) string {
	if l == nil {
		return ""
	}

	return l.Name
}
