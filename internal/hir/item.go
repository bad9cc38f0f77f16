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

import (
	"go/token"
	"strings"
)

// Crate is the root of the tree: the top-level items of one compilation unit in source order.
type Crate struct {
	Items []Item
}

// Item is a top-level declaration.
type Item interface {
	Pos() token.Pos
	End() token.Pos

	// Allowed reports whether the lint with the given name is suppressed on this item.
	Allowed(lint string) bool

	itemNode()
}

// Attrs are the attributes shared by all items.
type Attrs struct {
	// Allow lists the lints suppressed on the item. "all" suppresses every lint.
	Allow []string
}

// Allowed reports whether lint is in the allow list.
// Names compare case-insensitively, ignoring '-' and '_', so "empty-drop" allows "empty_drop".
func (a Attrs) Allowed(lint string) bool {
	lint = canonicalName(lint)
	for _, name := range a.Allow {
		if name = canonicalName(name); name == lint || name == "all" {
			return true
		}
	}

	return false
}

var nameReplacer = strings.NewReplacer("-", "", "_", "")

func canonicalName(name string) string {
	return strings.ToLower(nameReplacer.Replace(name))
}

type (
	// Impl is an implementation block: the members written for SelfTy,
	// either for a trait or inherent when Trait is nil.
	Impl struct {
		Span
		Attrs
		SelfTy string
		Trait  *TraitRef
		Items  []ImplItem
	}

	// Fn is a free function.
	Fn struct {
		Span
		Attrs
		Name string
		Body *Body // nil for functions without body
	}

	// Struct is a struct type declaration.
	Struct struct {
		Span
		Attrs
		Name   string
		Fields []string
	}

	// TypeDef is any other type declaration, including aliases.
	TypeDef struct {
		Span
		Attrs
		Name string
	}

	// Const is a constant declaration.
	Const struct {
		Span
		Attrs
		Name string
	}

	// Static is a package level variable.
	Static struct {
		Span
		Attrs
		Name string
	}
)

func (*Impl) itemNode()    {}
func (*Fn) itemNode()      {}
func (*Struct) itemNode()  {}
func (*TypeDef) itemNode() {}
func (*Const) itemNode()   {}
func (*Static) itemNode()  {}

// TraitRef is a reference to an implemented trait.
type TraitRef struct {
	Span
	Path string // as written
	Def  DefID  // zero if unresolved
}

// ImplItem is a member of an implementation block.
type ImplItem interface {
	Pos() token.Pos
	End() token.Pos
	implItemNode()
}

type (
	// ImplFn is a method.
	ImplFn struct {
		Span
		Name string
		Body *Body // nil for methods without body
	}

	// ImplConst is an associated constant.
	ImplConst struct {
		Span
		Name string
	}

	// ImplType is an associated type.
	ImplType struct {
		Span
		Name string
	}
)

func (*ImplFn) implItemNode()    {}
func (*ImplConst) implItemNode() {}
func (*ImplType) implItemNode()  {}

// Body is the body of a function.
type Body struct {
	Value Expr
}
