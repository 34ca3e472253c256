// Copyright 2021-2025 The driftlint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cst defines the concrete syntax tree produced by the parser.
//
// The tree is lossless: every token-bearing node records the extents of the
// trivia around its tokens, so concatenating, for each terminal in order, its
// leading trivia, its own text, and its trailing trivia reproduces the source
// slice the tree covers byte for byte.
//
// A node exclusively owns its children. Children do not point back at their
// parents; package lint builds a parent-indexed view when rules need
// contextual lookups.
package cst

import (
	"fmt"

	"github.com/driftlint/driftlint/report"
)

// Kind is a tag identifying the syntactic shape of a node.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Expressions.
	KindIdent
	KindNumber
	KindString
	KindRegex
	KindBool
	KindNull
	KindThis
	KindUnary
	KindUpdate
	KindGrouping
	KindBinary
	KindMember
	KindCall
	KindAssign

	// Statements.
	KindExprStmt
	KindEmptyStmt
	KindBlockStmt
	KindIfStmt
	KindWhileStmt
	KindDoWhileStmt
	KindForStmt
	KindForInStmt
	KindLabelledStmt
	KindWithStmt

	KindScript
)

var kindNames = [...]string{
	KindInvalid:      "invalid",
	KindIdent:        "identifier",
	KindNumber:       "number",
	KindString:       "string",
	KindRegex:        "regex",
	KindBool:         "boolean",
	KindNull:         "null",
	KindThis:         "this",
	KindUnary:        "unary expression",
	KindUpdate:       "update expression",
	KindGrouping:     "grouping",
	KindBinary:       "binary expression",
	KindMember:       "member expression",
	KindCall:         "call expression",
	KindAssign:       "assignment",
	KindExprStmt:     "expression statement",
	KindEmptyStmt:    "empty statement",
	KindBlockStmt:    "block",
	KindIfStmt:       "if statement",
	KindWhileStmt:    "while statement",
	KindDoWhileStmt:  "do-while statement",
	KindForStmt:      "for statement",
	KindForInStmt:    "for-in statement",
	KindLabelledStmt: "labelled statement",
	KindWithStmt:     "with statement",
	KindScript:       "script",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Whitespace records the trivia extents around a token.
//
// Before ends exactly at the token's start; After begins exactly at the
// token's end and runs to the start of the next meaningful token on the same
// line (trailing trivia never crosses a line terminator) or EOF.
type Whitespace struct {
	Before, After report.Span
}

// Sep is a terminal inside a composite node: a keyword or punctuation
// token's span together with its trivia.
type Sep struct {
	Tok report.Span
	Ws  Whitespace
}

// Syntax is implemented by every node in the tree.
type Syntax interface {
	report.Spanner

	// Kind returns the tag identifying this node's shape.
	Kind() Kind
}

// Expr is a node from the expression family.
type Expr interface {
	Syntax
	isExpr()
}

// Stmt is a node from the statement family.
type Stmt interface {
	Syntax
	isStmt()
}

// Script is the root of a parsed file.
type Script struct {
	Stmts []Stmt

	// Every comment token in the file, in source order. The lint stage scans
	// these for suppression directives.
	Comments []report.Span

	// The whole file.
	Range report.Span
}

func (s *Script) Kind() Kind        { return KindScript }
func (s *Script) Span() report.Span { return s.Range }
