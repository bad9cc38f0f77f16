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

// Stmt is a statement inside a [Block].
type Stmt interface {
	Pos() token.Pos
	End() token.Pos
	stmtNode()
}

type (
	// LetStmt binds local names.
	LetStmt struct {
		Span
		Names []string
		Init  Expr // may be nil
	}

	// ExprStmt is an expression in statement position without terminator, like a nested block.
	ExprStmt struct {
		Span
		X Expr
	}

	// SemiStmt is an expression evaluated for its effects.
	SemiStmt struct {
		Span
		X Expr
	}

	// ItemStmt is a local declaration.
	ItemStmt struct {
		Span
		Item Item
	}
)

func (*LetStmt) stmtNode()  {}
func (*ExprStmt) stmtNode() {}
func (*SemiStmt) stmtNode() {}
func (*ItemStmt) stmtNode() {}

// Block is a brace-delimited statement sequence with an optional trailing expression.
type Block struct {
	Span
	Stmts []Stmt
	Expr  Expr // may be nil
}

// Empty reports whether the block has neither statements nor a trailing expression.
func (b *Block) Empty() bool {
	return len(b.Stmts) == 0 && b.Expr == nil
}

// Expr is an expression.
type Expr interface {
	Pos() token.Pos
	End() token.Pos
	exprNode()
}

type (
	// BlockExpr is a block used as an expression.
	BlockExpr struct {
		*Block
	}

	// CallExpr is a function or method call.
	CallExpr struct {
		Span
		Fun  Expr
		Args []Expr
	}

	// PathExpr names a value, possibly qualified.
	PathExpr struct {
		Span
		Name string
	}

	// LitExpr is a literal.
	LitExpr struct {
		Span
		Value string
	}

	// ReturnExpr returns from the enclosing function.
	ReturnExpr struct {
		Span
		Results []Expr
	}

	// OpaqueExpr stands for any construct passes don't look into.
	OpaqueExpr struct {
		Span
		Kind string
	}
)

func (*BlockExpr) exprNode()  {}
func (*CallExpr) exprNode()   {}
func (*PathExpr) exprNode()   {}
func (*LitExpr) exprNode()    {}
func (*ReturnExpr) exprNode() {}
func (*OpaqueExpr) exprNode() {}
