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
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"fillmore-labs.com/emptydrop/internal/hir"
)

// lowerBody lowers a function body to a block expression, nil for functions without body.
func lowerBody(body *ast.BlockStmt) *hir.Body {
	if body == nil {
		return nil
	}

	return &hir.Body{Value: &hir.BlockExpr{Block: lowerBlock(body)}}
}

// lowerBlock lowers a Go block. Go blocks have no trailing expression.
func lowerBlock(b *ast.BlockStmt) *hir.Block {
	block := &hir.Block{Span: hir.SpanOf(b)}

	for _, stmt := range b.List {
		block.Stmts = appendStmt(block.Stmts, stmt)
	}

	return block
}

func appendStmt(stmts []hir.Stmt, stmt ast.Stmt) []hir.Stmt {
	span := hir.SpanOf(stmt)

	switch s := stmt.(type) {
	case *ast.EmptyStmt:
		return stmts

	case *ast.LabeledStmt:
		return appendStmt(stmts, s.Stmt)

	case *ast.BlockStmt:
		return append(stmts, &hir.ExprStmt{Span: span, X: &hir.BlockExpr{Block: lowerBlock(s)}})

	case *ast.AssignStmt:
		if s.Tok != token.DEFINE {
			break
		}

		return append(stmts, &hir.LetStmt{Span: span, Names: identNames(s.Lhs), Init: lowerInit(s, s.Rhs)})

	case *ast.DeclStmt:
		return appendDecl(stmts, s)

	case *ast.ExprStmt:
		return append(stmts, &hir.SemiStmt{Span: span, X: lowerExpr(s.X)})

	case *ast.ReturnStmt:
		return append(stmts, &hir.SemiStmt{Span: span, X: &hir.ReturnExpr{Span: span, Results: lowerExprs(s.Results)}})
	}

	return append(stmts, &hir.SemiStmt{Span: span, X: opaque(stmt)})
}

// appendDecl lowers local declarations: variables become bindings, everything else local items.
func appendDecl(stmts []hir.Stmt, s *ast.DeclStmt) []hir.Stmt {
	decl, ok := s.Decl.(*ast.GenDecl)
	if !ok {
		return append(stmts, &hir.SemiStmt{Span: hir.SpanOf(s), X: opaque(s.Decl)})
	}

	for _, spec := range decl.Specs {
		if vspec, ok := spec.(*ast.ValueSpec); ok && decl.Tok == token.VAR {
			let := &hir.LetStmt{Span: hir.SpanOf(vspec), Init: lowerInit(vspec, vspec.Values)}
			for _, id := range vspec.Names {
				let.Names = append(let.Names, id.Name)
			}

			stmts = append(stmts, let)

			continue
		}

		for _, item := range specItems(decl.Tok, spec, nil) {
			stmts = append(stmts, &hir.ItemStmt{Span: hir.SpanOf(spec), Item: item})
		}
	}

	return stmts
}

func identNames(exprs []ast.Expr) []string {
	names := make([]string, 0, len(exprs))

	for _, expr := range exprs {
		if id, ok := expr.(*ast.Ident); ok {
			names = append(names, id.Name)
		}
	}

	return names
}

// lowerInit lowers the initializer of a binding. Multiple values are opaque.
func lowerInit(n ast.Node, values []ast.Expr) hir.Expr {
	switch len(values) {
	case 0:
		return nil

	case 1:
		return lowerExpr(values[0])

	default:
		return &hir.OpaqueExpr{Span: hir.Span{Lo: values[0].Pos(), Hi: n.End()}, Kind: "Tuple"}
	}
}

func lowerExprs(exprs []ast.Expr) []hir.Expr {
	if len(exprs) == 0 {
		return nil
	}

	lowered := make([]hir.Expr, 0, len(exprs))
	for _, expr := range exprs {
		lowered = append(lowered, lowerExpr(expr))
	}

	return lowered
}

func lowerExpr(expr ast.Expr) hir.Expr {
	span := hir.SpanOf(expr)

	switch e := expr.(type) {
	case *ast.ParenExpr:
		return lowerExpr(e.X)

	case *ast.Ident:
		return &hir.PathExpr{Span: span, Name: e.Name}

	case *ast.SelectorExpr:
		if x, ok := e.X.(*ast.Ident); ok {
			return &hir.PathExpr{Span: span, Name: x.Name + "." + e.Sel.Name}
		}

	case *ast.BasicLit:
		return &hir.LitExpr{Span: span, Value: e.Value}

	case *ast.CallExpr:
		return &hir.CallExpr{Span: span, Fun: lowerExpr(e.Fun), Args: lowerExprs(e.Args)}
	}

	return opaque(expr)
}

// opaque wraps a construct no pass looks into, named after its syntax node.
func opaque(n ast.Node) *hir.OpaqueExpr {
	kind := strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")

	return &hir.OpaqueExpr{Span: hir.SpanOf(n), Kind: kind}
}
