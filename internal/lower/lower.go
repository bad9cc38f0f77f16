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

package lower

import (
	"cmp"
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/emptydrop/internal/astutil"
	"fillmore-labs.com/emptydrop/internal/hir"
)

// Package lowers the declarations of files into a [hir.Crate].
//
// info must hold the definitions of the files. Methods are attached to
// implementations of d when their receiver type implements it.
func Package(ctx context.Context, fset *token.FileSet, files []*ast.File, info *types.Info, d Destructor) *hir.Crate {
	defer trace.StartRegion(ctx, "Lower").End()

	l := lowerer{
		info:       info,
		destructor: d,
		receivers:  make(map[receiverKey]*receiver),
	}

	for _, file := range files {
		l.file(astutil.NewCurrentFile(fset, file))
	}

	items := l.items
	for _, r := range l.order {
		items = append(items, l.impls(l.receivers[r])...)
	}

	slices.SortStableFunc(items, func(a, b hir.Item) int { return cmp.Compare(a.Pos(), b.Pos()) })

	return &hir.Crate{Items: items}
}

type lowerer struct {
	info       *types.Info
	destructor Destructor

	items     []hir.Item
	receivers map[receiverKey]*receiver
	order     []receiverKey
}

// receiverKey identifies a receiver base type: the resolved type when type
// information is available, the name as written otherwise.
type receiverKey struct {
	obj  *types.TypeName
	name string
}

// receiver collects the methods declared for one receiver base type.
type receiver struct {
	name    string
	named   *types.Named
	methods []method
}

type method struct {
	decl  *ast.FuncDecl
	allow []string
}

func (l *lowerer) file(cf astutil.CurrentFile) {
	f := cf.File()
	if f == nil {
		return
	}

	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			allow := cf.Suppressed(decl.Doc, decl.Pos())

			if decl.Recv == nil || len(decl.Recv.List) == 0 {
				l.items = append(l.items, &hir.Fn{
					Span:  hir.SpanOf(decl),
					Attrs: hir.Attrs{Allow: allow},
					Name:  decl.Name.Name,
					Body:  lowerBody(decl.Body),
				})

				continue
			}

			l.addMethod(decl, allow)

		case *ast.GenDecl:
			if decl.Tok == token.IMPORT {
				continue
			}

			for _, spec := range decl.Specs {
				allow := cf.Suppressed(decl.Doc, spec.Pos())
				l.items = append(l.items, specItems(decl.Tok, spec, allow)...)
			}
		}
	}
}

func (l *lowerer) addMethod(decl *ast.FuncDecl, allow []string) {
	named := l.receiverType(decl)

	var key receiverKey
	if named != nil {
		key.obj = named.Obj()
	} else {
		key.name = receiverName(decl.Recv.List[0].Type)
	}

	r, ok := l.receivers[key]
	if !ok {
		r = &receiver{name: key.name, named: named}
		if named != nil {
			r.name = named.Obj().Name()
		}

		l.receivers[key] = r
		l.order = append(l.order, key)
	}

	r.methods = append(r.methods, method{decl: decl, allow: allow})
}

// receiverType returns the named receiver base type of a method with aliases resolved,
// if type information is available.
func (l *lowerer) receiverType(decl *ast.FuncDecl) *types.Named {
	if l.info == nil {
		return nil
	}

	fn, ok := l.info.Defs[decl.Name].(*types.Func)
	if !ok {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil
	}

	t := types.Unalias(sig.Recv().Type())
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	return named.Origin()
}

// impls splits the methods of a receiver into a destructor implementation and an inherent one.
func (l *lowerer) impls(r *receiver) []hir.Item {
	var trait, inherent []method

	if l.destructor.implementedBy(r.named) {
		for _, m := range r.methods {
			if l.destructor.declares(m.decl.Name.Name) {
				trait = append(trait, m)
			} else {
				inherent = append(inherent, m)
			}
		}
	} else {
		inherent = r.methods
	}

	var impls []hir.Item

	if len(trait) > 0 {
		impl := newImpl(r.name, trait)
		impl.Trait = &hir.TraitRef{
			Span: hir.SpanOf(trait[0].decl.Recv),
			Path: l.destructor.ID.String(),
			Def:  l.destructor.ID,
		}
		impls = append(impls, impl)
	}

	if len(inherent) > 0 {
		impls = append(impls, newImpl(r.name, inherent))
	}

	return impls
}

// newImpl creates an implementation anchored at its first member.
func newImpl(self string, methods []method) *hir.Impl {
	impl := &hir.Impl{
		Span:   hir.SpanOf(methods[0].decl),
		SelfTy: self,
		Items:  make([]hir.ImplItem, 0, len(methods)),
	}

	for _, m := range methods {
		impl.Allow = append(impl.Allow, m.allow...)
		impl.Items = append(impl.Items, &hir.ImplFn{
			Span: hir.SpanOf(m.decl),
			Name: m.decl.Name.Name,
			Body: lowerBody(m.decl.Body),
		})
	}

	return impl
}

// receiverName returns the base type name of a receiver expression like *T or T[K, V].
func receiverName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.SelectorExpr:
			return e.Sel.Name
		case *ast.Ident:
			return e.Name
		default:
			return "_"
		}
	}
}

// specItems lowers a type, const or var specification.
func specItems(tok token.Token, spec ast.Spec, allow []string) []hir.Item {
	switch spec := spec.(type) {
	case *ast.TypeSpec:
		allow = append(allow, astutil.DocLinters(spec.Doc)...)
		attrs := hir.Attrs{Allow: allow}

		if st, ok := spec.Type.(*ast.StructType); ok && spec.Assign == 0 {
			return []hir.Item{&hir.Struct{Span: hir.SpanOf(spec), Attrs: attrs, Name: spec.Name.Name, Fields: fieldNames(st)}}
		}

		return []hir.Item{&hir.TypeDef{Span: hir.SpanOf(spec), Attrs: attrs, Name: spec.Name.Name}}

	case *ast.ValueSpec:
		allow = append(allow, astutil.DocLinters(spec.Doc)...)
		attrs := hir.Attrs{Allow: allow}

		items := make([]hir.Item, 0, len(spec.Names))
		for _, id := range spec.Names {
			if tok == token.CONST {
				items = append(items, &hir.Const{Span: hir.SpanOf(spec), Attrs: attrs, Name: id.Name})
			} else {
				items = append(items, &hir.Static{Span: hir.SpanOf(spec), Attrs: attrs, Name: id.Name})
			}
		}

		return items
	}

	return nil
}

func fieldNames(st *ast.StructType) []string {
	var names []string

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 { // embedded
			names = append(names, receiverName(field.Type))

			continue
		}

		for _, id := range field.Names {
			names = append(names, id.Name)
		}
	}

	return names
}
