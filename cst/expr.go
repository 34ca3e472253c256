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

package cst

import (
	"github.com/driftlint/driftlint/report"
	"github.com/driftlint/driftlint/token"
)

// Ident is a bare identifier.
type Ident struct {
	Name string
	Tok  report.Span
	Ws   Whitespace
}

// Number is a numeric literal.
type Number struct {
	Tok report.Span
	Ws  Whitespace
}

// String is a string literal, quotes included.
type String struct {
	// The decoded value, escapes resolved.
	Value string
	Tok   report.Span
	Ws    Whitespace
}

// Regex is a regex literal, delimiters and flags included.
type Regex struct {
	Tok report.Span
	Ws  Whitespace
}

// Bool is `true` or `false`.
type Bool struct {
	Value bool
	Tok   report.Span
	Ws    Whitespace
}

// Null is the `null` literal.
type Null struct {
	Tok report.Span
	Ws  Whitespace
}

// This is the `this` expression.
type This struct {
	Tok report.Span
	Ws  Whitespace
}

// Unary is a prefix operator application: `delete`, `void`, `typeof`, unary
// `+`/`-`, `~`, or `!`. Tok and Ws describe the operator token.
type Unary struct {
	Op      token.Kind
	Tok     report.Span
	Ws      Whitespace
	Operand Expr
}

// Update is a `++` or `--` application, prefix or postfix. Tok and Ws
// describe the operator token.
type Update struct {
	Op      token.Kind
	Prefix  bool
	Tok     report.Span
	Ws      Whitespace
	Operand Expr
}

// Grouping is a parenthesized expression. The two paren tokens carry
// independent trivia pairs.
type Grouping struct {
	Open  Sep
	Inner Expr
	Close Sep
}

// Binary is an infix operator application, including `in` and `instanceof`.
type Binary struct {
	Op    token.Kind
	OpSep Sep
	Left  Expr
	Right Expr
}

// Member is a dotted property access.
type Member struct {
	Object Expr
	Dot    Sep
	Prop   *Ident
}

// Call is a call expression. Commas separate the arguments; len(Commas) is
// len(Args)-1 for a non-empty argument list.
type Call struct {
	Callee Expr
	Open   Sep
	Args   []Expr
	Commas []Sep
	Close  Sep
}

// Assign is an assignment expression, simple or compound.
type Assign struct {
	Op     token.Kind
	OpSep  Sep
	Target Expr
	Value  Expr
}

func (e *Ident) Kind() Kind    { return KindIdent }
func (e *Number) Kind() Kind   { return KindNumber }
func (e *String) Kind() Kind   { return KindString }
func (e *Regex) Kind() Kind    { return KindRegex }
func (e *Bool) Kind() Kind     { return KindBool }
func (e *Null) Kind() Kind     { return KindNull }
func (e *This) Kind() Kind     { return KindThis }
func (e *Unary) Kind() Kind    { return KindUnary }
func (e *Update) Kind() Kind   { return KindUpdate }
func (e *Grouping) Kind() Kind { return KindGrouping }
func (e *Binary) Kind() Kind   { return KindBinary }
func (e *Member) Kind() Kind   { return KindMember }
func (e *Call) Kind() Kind     { return KindCall }
func (e *Assign) Kind() Kind   { return KindAssign }

func (e *Ident) Span() report.Span  { return e.Tok }
func (e *Number) Span() report.Span { return e.Tok }
func (e *String) Span() report.Span { return e.Tok }
func (e *Regex) Span() report.Span  { return e.Tok }
func (e *Bool) Span() report.Span   { return e.Tok }
func (e *Null) Span() report.Span   { return e.Tok }
func (e *This) Span() report.Span   { return e.Tok }

// Span covers the operator through the end of the operand; the operand's
// trailing trivia is not part of the expression.
func (e *Unary) Span() report.Span {
	return report.Span{Start: e.Tok.Start, End: e.Operand.Span().End}
}

func (e *Update) Span() report.Span {
	if e.Prefix {
		return report.Span{Start: e.Tok.Start, End: e.Operand.Span().End}
	}
	return report.Span{Start: e.Operand.Span().Start, End: e.Tok.End}
}

func (e *Grouping) Span() report.Span {
	return report.Span{Start: e.Open.Tok.Start, End: e.Close.Tok.End}
}

func (e *Binary) Span() report.Span {
	return report.Span{Start: e.Left.Span().Start, End: e.Right.Span().End}
}

func (e *Member) Span() report.Span {
	return report.Span{Start: e.Object.Span().Start, End: e.Prop.Span().End}
}

func (e *Call) Span() report.Span {
	return report.Span{Start: e.Callee.Span().Start, End: e.Close.Tok.End}
}

func (e *Assign) Span() report.Span {
	return report.Span{Start: e.Target.Span().Start, End: e.Value.Span().End}
}

func (e *Ident) isExpr()    {}
func (e *Number) isExpr()   {}
func (e *String) isExpr()   {}
func (e *Regex) isExpr()    {}
func (e *Bool) isExpr()     {}
func (e *Null) isExpr()     {}
func (e *This) isExpr()     {}
func (e *Unary) isExpr()    {}
func (e *Update) isExpr()   {}
func (e *Grouping) isExpr() {}
func (e *Binary) isExpr()   {}
func (e *Member) isExpr()   {}
func (e *Call) isExpr()     {}
func (e *Assign) isExpr()   {}
