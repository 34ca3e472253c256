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

package parser

import (
	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/report"
	"github.com/driftlint/driftlint/token"
)

// parseStmt parses a single statement.
func (p *Parser) parseStmt(leading *report.Span) (cst.Stmt, error) {
	before, err := p.resolveLeading(leading)
	if err != nil {
		return nil, err
	}

	switch p.cur.Kind {
	case token.Semicolon:
		tok := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		after, err := p.whitespace(false)
		if err != nil {
			return nil, err
		}
		return &cst.EmptyStmt{Semi: tok, Ws: cst.Whitespace{Before: before, After: after}}, nil

	case token.LBrace:
		return p.parseBlock(&before)

	case token.KwIf:
		return p.parseIf(&before)

	case token.KwWhile:
		return p.parseWhile(&before)

	case token.KwDo:
		return p.parseDoWhile(&before)

	case token.KwFor:
		return p.parseFor(&before)

	case token.KwWith:
		return p.parseWith(&before)

	case token.Ident:
		// An identifier directly followed by a colon is a label, not an
		// expression statement.
		if p.peekAfterCur() == token.Colon {
			label, err := p.parseIdent(&before)
			if err != nil {
				return nil, err
			}
			colon, err := p.sep(token.Colon, nil)
			if err != nil {
				return nil, err
			}
			body, err := p.parseStmt(nil)
			if err != nil {
				return nil, err
			}
			return &cst.LabelledStmt{Label: label, Colon: colon, Body: body}, nil
		}
	}

	expr, err := p.parseExpr(&before)
	if err != nil {
		return nil, err
	}
	semi, err := p.stmtEnd(expr.Span().End)
	if err != nil {
		return nil, err
	}
	return &cst.ExprStmt{Expr: expr, Semi: semi}, nil
}

// stmtEnd consumes the semicolon terminating an expression-like statement,
// or decides that one was inserted automatically. A missing semicolon with
// no insertion point is a recoverable diagnostic, not a parse failure.
func (p *Parser) stmtEnd(end int) (*cst.Sep, error) {
	next, hadLinebreak := p.peekPastTrivia()
	switch {
	case next == token.Semicolon:
		semi, err := p.sep(token.Semicolon, nil)
		if err != nil {
			return nil, err
		}
		return &semi, nil
	case next == token.EOF || next == token.RBrace || hadLinebreak:
		return nil, nil
	default:
		p.Report.Errorf("expected `;` after statement").With(
			report.Tagged(report.TagMissingSemicolon),
			report.SnippetAtf(p.file.Span(end, end), "a `;` belongs here"),
		)
		return nil, nil
	}
}

// peekAfterCur reports the kind of the first meaningful token after the
// cursor's token, without consuming anything.
func (p *Parser) peekAfterCur() token.Kind {
	mark := p.lexer.Mark()
	defer p.lexer.Rewind(mark)

	for {
		tok, err := p.lexer.Next()
		if err != nil {
			return token.EOF
		}
		if !tok.Kind.IsTrivia() {
			return tok.Kind
		}
	}
}

func (p *Parser) parseBlock(leading *report.Span) (cst.Stmt, error) {
	open, err := p.sep(token.LBrace, leading)
	if err != nil {
		return nil, err
	}

	block := &cst.BlockStmt{Open: open}
	for {
		stmtLeading, err := p.whitespace(true)
		if err != nil {
			return nil, err
		}
		if p.cur.Kind == token.RBrace || p.cur.Kind == token.EOF {
			closeTok, err := p.expect(token.RBrace)
			if err != nil {
				return nil, err
			}
			closeAfter, err := p.whitespace(false)
			if err != nil {
				return nil, err
			}
			block.Close = cst.Sep{
				Tok: closeTok,
				Ws:  cst.Whitespace{Before: stmtLeading, After: closeAfter},
			}
			return block, nil
		}

		stmt, err := p.parseStmt(&stmtLeading)
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
}

// parseCond parses the parenthesized head shared by if, while, do-while, and
// with.
func (p *Parser) parseCond() (open cst.Sep, cond cst.Expr, close cst.Sep, err error) {
	if open, err = p.sep(token.LParen, nil); err != nil {
		return
	}
	if cond, err = p.parseExpr(nil); err != nil {
		return
	}
	close, err = p.sep(token.RParen, nil)
	return
}

func (p *Parser) parseIf(leading *report.Span) (cst.Stmt, error) {
	ifSep, err := p.sep(token.KwIf, leading)
	if err != nil {
		return nil, err
	}
	open, cond, close, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStmt(nil)
	if err != nil {
		return nil, err
	}

	stmt := &cst.IfStmt{If: ifSep, Open: open, Cond: cond, Close: close, Body: body}
	if next, _ := p.peekPastTrivia(); next == token.KwElse {
		elseSep, err := p.sep(token.KwElse, nil)
		if err != nil {
			return nil, err
		}
		stmt.Else = &elseSep
		if stmt.ElseBody, err = p.parseStmt(nil); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhile(leading *report.Span) (cst.Stmt, error) {
	while, err := p.sep(token.KwWhile, leading)
	if err != nil {
		return nil, err
	}
	open, cond, close, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStmt(nil)
	if err != nil {
		return nil, err
	}
	return &cst.WhileStmt{While: while, Open: open, Cond: cond, Close: close, Body: body}, nil
}

func (p *Parser) parseDoWhile(leading *report.Span) (cst.Stmt, error) {
	do, err := p.sep(token.KwDo, leading)
	if err != nil {
		return nil, err
	}
	body, err := p.parseStmt(nil)
	if err != nil {
		return nil, err
	}
	while, err := p.sep(token.KwWhile, nil)
	if err != nil {
		return nil, err
	}
	open, cond, close, err := p.parseCond()
	if err != nil {
		return nil, err
	}

	stmt := &cst.DoWhileStmt{
		Do: do, Body: body, While: while,
		Open: open, Cond: cond, Close: close,
	}
	// The terminating semicolon of a do-while is optional everywhere.
	if next, _ := p.peekPastTrivia(); next == token.Semicolon {
		semi, err := p.sep(token.Semicolon, nil)
		if err != nil {
			return nil, err
		}
		stmt.Semi = &semi
	}
	return stmt, nil
}

func (p *Parser) parseFor(leading *report.Span) (cst.Stmt, error) {
	forSep, err := p.sep(token.KwFor, leading)
	if err != nil {
		return nil, err
	}
	open, err := p.sep(token.LParen, nil)
	if err != nil {
		return nil, err
	}

	var init cst.Expr
	if next, _ := p.peekPastTrivia(); next != token.Semicolon {
		p.noIn = true
		init, err = p.parseExpr(nil)
		p.noIn = false
		if err != nil {
			return nil, err
		}

		if next, _ := p.peekPastTrivia(); next == token.KwIn {
			in, err := p.sep(token.KwIn, nil)
			if err != nil {
				return nil, err
			}
			right, err := p.parseExpr(nil)
			if err != nil {
				return nil, err
			}
			close, err := p.sep(token.RParen, nil)
			if err != nil {
				return nil, err
			}
			body, err := p.parseStmt(nil)
			if err != nil {
				return nil, err
			}
			return &cst.ForInStmt{
				For: forSep, Open: open, Left: init, In: in,
				Right: right, Close: close, Body: body,
			}, nil
		}
	}

	semi1, err := p.sep(token.Semicolon, nil)
	if err != nil {
		return nil, err
	}

	var test cst.Expr
	if next, _ := p.peekPastTrivia(); next != token.Semicolon {
		if test, err = p.parseExpr(nil); err != nil {
			return nil, err
		}
	}
	semi2, err := p.sep(token.Semicolon, nil)
	if err != nil {
		return nil, err
	}

	var update cst.Expr
	if next, _ := p.peekPastTrivia(); next != token.RParen {
		if update, err = p.parseExpr(nil); err != nil {
			return nil, err
		}
	}
	close, err := p.sep(token.RParen, nil)
	if err != nil {
		return nil, err
	}
	body, err := p.parseStmt(nil)
	if err != nil {
		return nil, err
	}

	return &cst.ForStmt{
		For: forSep, Open: open,
		Init: init, Semi1: semi1, Test: test, Semi2: semi2, Update: update,
		Close: close, Body: body,
	}, nil
}

func (p *Parser) parseWith(leading *report.Span) (cst.Stmt, error) {
	with, err := p.sep(token.KwWith, leading)
	if err != nil {
		return nil, err
	}
	open, object, close, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStmt(nil)
	if err != nil {
		return nil, err
	}
	return &cst.WithStmt{With: with, Open: open, Object: object, Close: close, Body: body}, nil
}
