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

import "github.com/driftlint/driftlint/report"

// ExprStmt is an expression used as a statement. Semi is nil when the
// terminating semicolon was inserted automatically.
type ExprStmt struct {
	Expr Expr
	Semi *Sep
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Semi report.Span
	Ws   Whitespace
}

// BlockStmt is a braced statement list.
type BlockStmt struct {
	Open  Sep
	Stmts []Stmt
	Close Sep
}

// IfStmt is an if statement with an optional else clause. Else and ElseBody
// are nil together.
type IfStmt struct {
	If       Sep
	Open     Sep
	Cond     Expr
	Close    Sep
	Body     Stmt
	Else     *Sep
	ElseBody Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	While Sep
	Open  Sep
	Cond  Expr
	Close Sep
	Body  Stmt
}

// DoWhileStmt is a do-while loop. Semi is nil when the terminating semicolon
// was inserted automatically.
type DoWhileStmt struct {
	Do    Sep
	Body  Stmt
	While Sep
	Open  Sep
	Cond  Expr
	Close Sep
	Semi  *Sep
}

// ForStmt is a C-style for loop. Init, Test, and Update may each be nil.
type ForStmt struct {
	For    Sep
	Open   Sep
	Init   Expr
	Semi1  Sep
	Test   Expr
	Semi2  Sep
	Update Expr
	Close  Sep
	Body   Stmt
}

// ForInStmt is a for-in loop.
type ForInStmt struct {
	For   Sep
	Open  Sep
	Left  Expr
	In    Sep
	Right Expr
	Close Sep
	Body  Stmt
}

// LabelledStmt is a statement with a label prefix.
type LabelledStmt struct {
	Label *Ident
	Colon Sep
	Body  Stmt
}

// WithStmt is a with statement.
type WithStmt struct {
	With   Sep
	Open   Sep
	Object Expr
	Close  Sep
	Body   Stmt
}

func (s *ExprStmt) Kind() Kind     { return KindExprStmt }
func (s *EmptyStmt) Kind() Kind    { return KindEmptyStmt }
func (s *BlockStmt) Kind() Kind    { return KindBlockStmt }
func (s *IfStmt) Kind() Kind       { return KindIfStmt }
func (s *WhileStmt) Kind() Kind    { return KindWhileStmt }
func (s *DoWhileStmt) Kind() Kind  { return KindDoWhileStmt }
func (s *ForStmt) Kind() Kind      { return KindForStmt }
func (s *ForInStmt) Kind() Kind    { return KindForInStmt }
func (s *LabelledStmt) Kind() Kind { return KindLabelledStmt }
func (s *WithStmt) Kind() Kind     { return KindWithStmt }

func (s *ExprStmt) Span() report.Span {
	span := s.Expr.Span()
	if s.Semi != nil {
		span.End = s.Semi.Tok.End
	}
	return span
}

func (s *EmptyStmt) Span() report.Span { return s.Semi }

func (s *BlockStmt) Span() report.Span {
	return report.Span{Start: s.Open.Tok.Start, End: s.Close.Tok.End}
}

func (s *IfStmt) Span() report.Span {
	end := s.Body.Span().End
	if s.ElseBody != nil {
		end = s.ElseBody.Span().End
	}
	return report.Span{Start: s.If.Tok.Start, End: end}
}

func (s *WhileStmt) Span() report.Span {
	return report.Span{Start: s.While.Tok.Start, End: s.Body.Span().End}
}

func (s *DoWhileStmt) Span() report.Span {
	end := s.Close.Tok.End
	if s.Semi != nil {
		end = s.Semi.Tok.End
	}
	return report.Span{Start: s.Do.Tok.Start, End: end}
}

func (s *ForStmt) Span() report.Span {
	return report.Span{Start: s.For.Tok.Start, End: s.Body.Span().End}
}

func (s *ForInStmt) Span() report.Span {
	return report.Span{Start: s.For.Tok.Start, End: s.Body.Span().End}
}

func (s *LabelledStmt) Span() report.Span {
	return report.Span{Start: s.Label.Span().Start, End: s.Body.Span().End}
}

func (s *WithStmt) Span() report.Span {
	return report.Span{Start: s.With.Tok.Start, End: s.Body.Span().End}
}

func (s *ExprStmt) isStmt()     {}
func (s *EmptyStmt) isStmt()    {}
func (s *BlockStmt) isStmt()    {}
func (s *IfStmt) isStmt()       {}
func (s *WhileStmt) isStmt()    {}
func (s *DoWhileStmt) isStmt()  {}
func (s *ForStmt) isStmt()      {}
func (s *ForInStmt) isStmt()    {}
func (s *LabelledStmt) isStmt() {}
func (s *WithStmt) isStmt()     {}
