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

// parseExpr parses a full expression: an assignment or anything below it.
func (p *Parser) parseExpr(leading *report.Span) (cst.Expr, error) {
	return p.parseAssign(leading)
}

// parseAssign parses a (right-associative) assignment expression.
func (p *Parser) parseAssign(leading *report.Span) (cst.Expr, error) {
	target, err := p.parseBinary(leading, 1)
	if err != nil {
		return nil, err
	}

	op, _ := p.peekPastTrivia()
	if !op.IsAssignOp() {
		return target, nil
	}

	opSep, err := p.sep(op, nil)
	if err != nil {
		return nil, err
	}
	p.checkAssignTarget(target, opSep.Tok)

	value, err := p.parseAssign(nil)
	if err != nil {
		return nil, err
	}
	return &cst.Assign{Op: op, OpSep: opSep, Target: target, Value: value}, nil
}

// parseBinary parses a run of infix operators of precedence minPrec or
// tighter, by precedence climbing. All implemented binary operators are
// left-associative.
func (p *Parser) parseBinary(leading *report.Span, minPrec int) (cst.Expr, error) {
	left, err := p.parseUnary(leading)
	if err != nil {
		return nil, err
	}

	for {
		op, _ := p.peekPastTrivia()
		prec := p.binaryPrec(op)
		if prec < minPrec {
			return left, nil
		}

		opSep, err := p.sep(op, nil)
		if err != nil {
			return nil, err
		}
		right, err := p.parseBinary(nil, prec+1)
		if err != nil {
			return nil, err
		}
		left = &cst.Binary{Op: op, OpSep: opSep, Left: left, Right: right}
	}
}

// binaryPrec returns the binding strength of an infix operator, or 0 for
// kinds that are not infix operators in the current context.
func (p *Parser) binaryPrec(k token.Kind) int {
	switch k {
	case token.LogicalOr:
		return 1
	case token.LogicalAnd:
		return 2
	case token.BitwiseOr:
		return 3
	case token.BitwiseXor:
		return 4
	case token.BitwiseAnd:
		return 5
	case token.Eq, token.NotEq, token.StrictEq, token.StrictNeq:
		return 6
	case token.Less, token.Greater, token.LessEq, token.GreaterEq, token.KwInstanceof:
		return 7
	case token.KwIn:
		// In a for head's init clause, `in` belongs to the statement.
		if p.noIn {
			return 0
		}
		return 7
	case token.Shl, token.Shr, token.UShr:
		return 8
	case token.Add, token.Sub:
		return 9
	case token.Mul, token.Div, token.Mod:
		return 10
	default:
		return 0
	}
}

// parseUnary parses a unary, update, or postfix-update expression.
//
// The postfix branch is where automatic semicolon insertion bites: `a\n++b`
// must parse as two statements, not `a++` followed by `b`. The lookahead past
// the operand's trailing trivia therefore tracks line terminators, and a
// terminator before `++`/`--` suppresses the postfix binding, leaving the
// operator unconsumed for the next parse.
func (p *Parser) parseUnary(leading *report.Span) (cst.Expr, error) {
	before, err := p.resolveLeading(leading)
	if err != nil {
		return nil, err
	}

	switch {
	case p.cur.Kind.IsUpdateOp():
		op, tok := p.cur.Kind, p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		after, err := p.whitespace(false)
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary(nil)
		if err != nil {
			return nil, err
		}

		// A nested update expression is itself not a valid target, so a chain
		// like `++--x` reports at every level above the innermost.
		p.checkAssignTarget(operand, tok)

		return &cst.Update{
			Op: op, Prefix: true, Tok: tok,
			Ws:      cst.Whitespace{Before: before, After: after},
			Operand: operand,
		}, nil

	case p.cur.Kind.IsUnaryOp():
		op, tok := p.cur.Kind, p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		after, err := p.whitespace(false)
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary(nil)
		if err != nil {
			return nil, err
		}

		if p.strict && op == token.KwDelete {
			if _, ok := operand.(*cst.Ident); ok {
				p.Report.Errorf("`delete` applied to a variable in strict mode").With(
					report.Tagged(report.TagIdentifierDeletion),
					report.Snippetf(operand, "this is a variable, not a property"),
					report.SnippetAtf(tok, "`delete` used here"),
					report.Helpf("`delete` removes object properties; deleting a variable binding is a strict-mode error"),
				)
			}
		}

		return &cst.Unary{
			Op: op, Tok: tok,
			Ws:      cst.Whitespace{Before: before, After: after},
			Operand: operand,
		}, nil
	}

	operand, err := p.parseLHS(&before)
	if err != nil {
		return nil, err
	}

	next, hadLinebreak := p.peekPastTrivia()
	if !next.IsUpdateOp() || hadLinebreak {
		return operand, nil
	}

	opBefore, err := p.whitespace(true)
	if err != nil {
		return nil, err
	}
	op, tok := p.cur.Kind, p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	after, err := p.whitespace(false)
	if err != nil {
		return nil, err
	}

	p.checkAssignTarget(operand, tok)

	return &cst.Update{
		Op: op, Prefix: false, Tok: tok,
		Ws:      cst.Whitespace{Before: opBefore, After: after},
		Operand: operand,
	}, nil
}

// checkAssignTarget pushes a recoverable diagnostic when target cannot be
// written through. The tree being built is kept as-is.
func (p *Parser) checkAssignTarget(target cst.Expr, opTok report.Span) {
	if cst.IsValidAssignTarget(target, p.strict) {
		return
	}
	p.Report.Errorf("invalid target for %s", p.text(opTok)).With(
		report.Tagged(report.TagInvalidAssignTarget),
		report.Snippetf(target, "cannot be written to"),
		report.SnippetAtf(opTok, "%s needs a variable or property", p.text(opTok)),
	)
}

// parseLHS parses a primary expression followed by any number of member
// accesses and calls.
func (p *Parser) parseLHS(leading *report.Span) (cst.Expr, error) {
	expr, err := p.parsePrimary(leading)
	if err != nil {
		return nil, err
	}

	for {
		switch next, _ := p.peekPastTrivia(); next {
		case token.Dot:
			dot, err := p.sep(token.Dot, nil)
			if err != nil {
				return nil, err
			}
			prop, err := p.parseIdent(nil)
			if err != nil {
				return nil, err
			}
			expr = &cst.Member{Object: expr, Dot: dot, Prop: prop}

		case token.LParen:
			expr, err = p.parseCall(expr)
			if err != nil {
				return nil, err
			}

		default:
			return expr, nil
		}
	}
}

// parseCall parses a parenthesized argument list applied to callee.
func (p *Parser) parseCall(callee cst.Expr) (cst.Expr, error) {
	open, err := p.sep(token.LParen, nil)
	if err != nil {
		return nil, err
	}
	call := &cst.Call{Callee: callee, Open: open}

	if next, _ := p.peekPastTrivia(); next != token.RParen {
		for {
			arg, err := p.parseAssign(nil)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)

			if next, _ := p.peekPastTrivia(); next != token.Comma {
				break
			}
			comma, err := p.sep(token.Comma, nil)
			if err != nil {
				return nil, err
			}
			call.Commas = append(call.Commas, comma)
		}
	}

	call.Close, err = p.sep(token.RParen, nil)
	if err != nil {
		return nil, err
	}
	return call, nil
}

// parseIdent parses a bare identifier.
func (p *Parser) parseIdent(leading *report.Span) (*cst.Ident, error) {
	before, err := p.resolveLeading(leading)
	if err != nil {
		return nil, err
	}
	tok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	after, err := p.whitespace(false)
	if err != nil {
		return nil, err
	}
	return &cst.Ident{
		Name: p.text(tok),
		Tok:  tok,
		Ws:   cst.Whitespace{Before: before, After: after},
	}, nil
}

// parsePrimary parses an atom: an identifier, a literal, `this`, or a
// parenthesized expression.
func (p *Parser) parsePrimary(leading *report.Span) (cst.Expr, error) {
	before, err := p.resolveLeading(leading)
	if err != nil {
		return nil, err
	}

	if p.cur.Kind == token.LParen {
		openTok := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		openAfter, err := p.whitespace(false)
		if err != nil {
			return nil, err
		}
		inner, err := p.parseExpr(nil)
		if err != nil {
			return nil, err
		}
		close, err := p.sep(token.RParen, nil)
		if err != nil {
			return nil, err
		}
		return &cst.Grouping{
			Open:  cst.Sep{Tok: openTok, Ws: cst.Whitespace{Before: before, After: openAfter}},
			Inner: inner,
			Close: close,
		}, nil
	}

	kind, tok := p.cur.Kind, p.cur.Span
	switch kind {
	case token.Ident, token.Number, token.String, token.Regex,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwThis:
	default:
		p.Report.Errorf("expected an expression, found %v", kind).With(
			report.Tagged(report.TagUnexpectedToken),
			report.SnippetAtf(tok, "expected an expression here"),
		)
		return nil, errParse
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	after, err := p.whitespace(false)
	if err != nil {
		return nil, err
	}
	ws := cst.Whitespace{Before: before, After: after}

	switch kind {
	case token.Ident:
		return &cst.Ident{Name: p.text(tok), Tok: tok, Ws: ws}, nil
	case token.Number:
		return &cst.Number{Tok: tok, Ws: ws}, nil
	case token.String:
		return &cst.String{Value: decodeString(p.text(tok)), Tok: tok, Ws: ws}, nil
	case token.Regex:
		return &cst.Regex{Tok: tok, Ws: ws}, nil
	case token.KwTrue, token.KwFalse:
		return &cst.Bool{Value: kind == token.KwTrue, Tok: tok, Ws: ws}, nil
	case token.KwNull:
		return &cst.Null{Tok: tok, Ws: ws}, nil
	default:
		return &cst.This{Tok: tok, Ws: ws}, nil
	}
}
