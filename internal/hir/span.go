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

package hir

import "go/token"

// Span is the half-open source range [Lo, Hi) of a node.
type Span struct {
	Lo, Hi token.Pos
}

// Pos returns the start of the span. Together with [Span.End] it satisfies analysis.Range.
func (s Span) Pos() token.Pos { return s.Lo }

// End returns the position immediately after the span.
func (s Span) End() token.Pos { return s.Hi }

// SpanOf returns the [Span] of a Go syntax node.
func SpanOf(n interface {
	Pos() token.Pos
	End() token.Pos
},
) Span {
	return Span{Lo: n.Pos(), Hi: n.End()}
}
