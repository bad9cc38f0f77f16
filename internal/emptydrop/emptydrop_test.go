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

package emptydrop_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/emptydrop/internal/emptydrop"
	"fillmore-labs.com/emptydrop/internal/hir"
	"fillmore-labs.com/emptydrop/internal/lint"
)

var (
	dropTrait  = hir.DefID{Pkg: "example.com/res", Name: "Dropper"}
	otherTrait = hir.DefID{Pkg: "fmt", Name: "Stringer"}
)

func span(lo, hi int) hir.Span { return hir.Span{Lo: token.Pos(lo), Hi: token.Pos(hi)} }

func block(stmts ...hir.Stmt) *hir.BlockExpr {
	return &hir.BlockExpr{Block: &hir.Block{Span: span(40, 90), Stmts: stmts}}
}

func method(value hir.Expr) *hir.ImplFn {
	return &hir.ImplFn{Span: span(20, 95), Name: "Drop", Body: &hir.Body{Value: value}}
}

func impl(trait hir.DefID, items ...hir.ImplItem) *hir.Impl {
	return &hir.Impl{
		Span:   span(10, 100),
		SelfTy: "S",
		Trait:  &hir.TraitRef{Path: trait.String(), Def: trait},
		Items:  items,
	}
}

func nestedEmpty() hir.Stmt {
	return &hir.ExprStmt{Span: span(50, 52), X: block()}
}

func letCompute() hir.Stmt {
	call := &hir.CallExpr{Span: span(60, 69), Fun: &hir.PathExpr{Span: span(60, 67), Name: "compute"}}

	return &hir.LetStmt{Span: span(50, 69), Names: []string{"_x"}, Init: call}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	inherent := impl(dropTrait, method(block()))
	inherent.Trait = nil

	trailing := block()
	trailing.Expr = &hir.LitExpr{Span: span(45, 47), Value: "()"}

	tests := []struct {
		name string
		item hir.Item
		want bool
	}{
		{"empty", impl(dropTrait, method(block())), true},
		{"nested_empty_block", impl(dropTrait, method(block(nestedEmpty()))), false},
		{"let", impl(dropTrait, method(block(letCompute()))), false},
		{"trailing_expression", impl(dropTrait, method(trailing)), false},
		{"other_trait", impl(otherTrait, method(block())), false},
		{"inherent", inherent, false},
		{"no_members", impl(dropTrait), false},
		{"two_members", impl(dropTrait, method(block()), method(block())), false},
		{"const_member", impl(dropTrait, &hir.ImplConst{Span: span(20, 30), Name: "C"}), false},
		{"type_member", impl(dropTrait, &hir.ImplType{Span: span(20, 30), Name: "T"}), false},
		{"no_body", impl(dropTrait, &hir.ImplFn{Span: span(20, 30), Name: "Drop"}), false},
		{"body_not_block", impl(dropTrait, method(&hir.PathExpr{Span: span(40, 41), Name: "x"})), false},
		{"free_function", &hir.Fn{Span: span(10, 100), Name: "Drop", Body: &hir.Body{Value: block()}}, false},
		{"struct", &hir.Struct{Span: span(10, 20), Name: "S"}, false},
	}

	rule := New(dropTrait)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, got := rule.Inspect(tt.item); got != tt.want {
				t.Errorf("Inspect() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestInspectFinding(t *testing.T) {
	t.Parallel()

	item := impl(dropTrait, method(block()))

	d, ok := New(dropTrait).Inspect(item)
	if !ok {
		t.Fatal("Expected a finding")
	}

	if d.Span != item.Span {
		t.Errorf("Finding at %v, want implementation span %v", d.Span, item.Span)
	}

	if d.Lint != EmptyDrop || d.Level != lint.Warn {
		t.Errorf("Got lint %v at level %s, want %s at %s", d.Lint, d.Level, EmptyDrop.Name, lint.Warn)
	}

	if d.Message != "empty drop implementation" || d.Help != "try removing this impl" {
		t.Errorf("Got message %q with help %q", d.Message, d.Help)
	}
}

func TestInspectUnresolved(t *testing.T) {
	t.Parallel()

	// An unresolved trait reference never matches, not even an unresolved destructor.
	item := impl(hir.DefID{}, method(block()))

	if _, ok := New(hir.DefID{}).Inspect(item); ok {
		t.Error("Unresolved trait reference reported")
	}
}

func TestInspectOtherTraits(t *testing.T) {
	t.Parallel()

	bodies := []*hir.BlockExpr{block(), block(nestedEmpty()), block(letCompute())}
	rule := New(dropTrait)

	for _, body := range bodies {
		for n := range 3 {
			items := make([]hir.ImplItem, n)
			for i := range items {
				items[i] = method(body)
			}

			if _, ok := rule.Inspect(impl(otherTrait, items...)); ok {
				t.Errorf("Reported implementation of %s with %d members", otherTrait, n)
			}
		}
	}
}

func TestInspectIdempotent(t *testing.T) {
	t.Parallel()

	rule := New(dropTrait)

	for _, item := range []hir.Item{
		impl(dropTrait, method(block())),
		impl(dropTrait, method(block(nestedEmpty()))),
	} {
		first, ok1 := rule.Inspect(item)
		second, ok2 := rule.Inspect(item)

		if ok1 != ok2 || first != second {
			t.Errorf("Inspect not idempotent: (%v, %t) != (%v, %t)", first, ok1, second, ok2)
		}
	}
}

func TestCheckItem(t *testing.T) {
	t.Parallel()

	var c lint.Collector

	rule := New(dropTrait)
	rule.CheckItem(impl(dropTrait, method(block())), &c)
	rule.CheckItem(impl(dropTrait, method(block(letCompute()))), &c)

	if got := c.Diagnostics(); len(got) != 1 {
		t.Errorf("Got %d diagnostics, want 1: %v", len(got), got)
	}
}
