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

// Package parser implements a whitespace-preserving recursive-descent parser
// for JavaScript.
//
// Only malformed tokens abort a parse. Syntactic misuse that still has a
// sensible tree shape — an invalid assignment target, a deleted identifier in
// strict mode — produces a diagnostic on the parser's [report.Report] and a
// best-effort node, so downstream stages always see a complete tree.
package parser

import (
	"errors"
	"strings"

	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/lexer"
	"github.com/driftlint/driftlint/report"
	"github.com/driftlint/driftlint/token"
)

// Parser holds the state threaded through every subparser call: the token
// cursor, the strict-mode flag, and the diagnostic sink.
//
// A Parser is bound to one file and must not be shared across goroutines;
// every subparser call both reads and advances it.
type Parser struct {
	file  *report.File
	lexer *lexer.Lexer
	cur   token.Token

	// Whether the parser is inside a strict-mode scope. Set by [WithStrictMode]
	// or by a `"use strict"` directive prologue; read-only during expression
	// parsing.
	strict bool

	// Whether `in` is currently forbidden as a binary operator, as in the
	// init clause of a for statement head.
	noIn bool

	comments []report.Span

	// Report accumulates every diagnostic pushed during the parse.
	Report report.Report
}

// Option configures a [Parser].
type Option func(*Parser)

// WithStrictMode starts the parser inside a strict-mode scope, as if the
// source were preceded by a `"use strict"` directive.
func WithStrictMode() Option {
	return func(p *Parser) { p.strict = true }
}

// New constructs a parser over the given file and primes its cursor.
func New(file *report.File, opts ...Option) (*Parser, error) {
	p := &Parser{file: file, lexer: lexer.New(file)}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.advance(); err != nil {
		return p, err
	}
	return p, nil
}

// Parse parses a whole script and returns the tree along with every
// diagnostic pushed while building it.
//
// The returned error is non-nil only for fatal failures: malformed tokens,
// or token sequences no statement shape can absorb. The report describes
// those failures too.
func Parse(file *report.File, opts ...Option) (*cst.Script, report.Report, error) {
	p, err := New(file, opts...)
	if err != nil {
		return nil, p.Report, err
	}
	script, err := p.ParseScript()
	return script, p.Report, err
}

// ParseScript parses statements until EOF, honoring a `"use strict"`
// directive prologue.
func (p *Parser) ParseScript() (*cst.Script, error) {
	script := &cst.Script{Range: p.file.Span(0, len(p.file.Text()))}

	prologue := true
	for {
		leading, err := p.whitespace(true)
		if err != nil {
			return nil, err
		}
		if p.cur.Kind == token.EOF {
			break
		}

		stmt, err := p.parseStmt(&leading)
		if err != nil {
			return nil, err
		}
		script.Stmts = append(script.Stmts, stmt)

		if prologue {
			prologue = false
			if expr, ok := stmt.(*cst.ExprStmt); ok {
				if str, ok := expr.Expr.(*cst.String); ok {
					prologue = true
					if str.Value == "use strict" {
						p.strict = true
					}
				}
			}
		}
	}

	script.Comments = p.comments
	return script, nil
}

// ParseExpr parses a single expression, leaving the cursor on the first
// token after the expression's trailing trivia.
func (p *Parser) ParseExpr() (cst.Expr, error) {
	return p.parseExpr(nil)
}

// ParseUnary parses a single expression from the unary/update family, leaving
// the cursor on the first token after the expression's trailing trivia.
func (p *Parser) ParseUnary() (cst.Expr, error) {
	return p.parseUnary(nil)
}

// advance moves the cursor to the next raw token, recording comment spans as
// they are passed.
func (p *Parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return p.fatal(err)
	}
	if tok.Kind == token.LineComment || tok.Kind == token.BlockComment {
		p.comments = append(p.comments, tok.Span)
	}
	p.cur = tok
	return nil
}

// fatal pushes a diagnostic describing a lexical failure and propagates it as
// a hard error.
func (p *Parser) fatal(err error) error {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		lexErr.Diagnose(p.Report.Errorf("%s", lexErr.Msg))
	}
	return err
}

// whitespace consumes the trivia at the cursor and returns its extent, which
// is zero-width when the cursor is already on a meaningful token.
//
// Leading trivia may cross line terminators. Trailing trivia must not: it
// stops at the first linebreak token, so that the postfix-operator lookahead
// and automatic semicolon insertion can still observe the break.
func (p *Parser) whitespace(leading bool) (report.Span, error) {
	start := p.cur.Span.Start
	for {
		switch p.cur.Kind {
		case token.Whitespace, token.LineComment, token.BlockComment:
		case token.Linebreak:
			if !leading {
				return report.Span{Start: start, End: p.cur.Span.Start}, nil
			}
		default:
			return report.Span{Start: start, End: p.cur.Span.Start}, nil
		}
		if err := p.advance(); err != nil {
			return report.Span{}, err
		}
	}
}

// resolveLeading returns the leading-trivia span for a production: either one
// the caller already consumed, or the trivia at the cursor. Leading trivia is
// consumed exactly once, never twice.
func (p *Parser) resolveLeading(leading *report.Span) (report.Span, error) {
	if leading != nil {
		return *leading, nil
	}
	return p.whitespace(true)
}

// peekPastTrivia reports the kind of the first meaningful token at or after
// the cursor, and whether a line terminator sits before it.
//
// The lookahead is transactional: the saved lexer position is restored on
// every exit path, so the parse position is never disturbed. A lexical error
// mid-peek reads as EOF; the real advance rediscovers and reports it.
func (p *Parser) peekPastTrivia() (next token.Kind, hadLinebreak bool) {
	mark := p.lexer.Mark()
	defer p.lexer.Rewind(mark)

	tok := p.cur
	for {
		switch tok.Kind {
		case token.Whitespace, token.LineComment, token.BlockComment:
		case token.Linebreak:
			hadLinebreak = true
		default:
			return tok.Kind, hadLinebreak
		}

		var err error
		tok, err = p.lexer.Next()
		if err != nil {
			return token.EOF, hadLinebreak
		}
	}
}

// expect consumes a token of the given kind and returns its span. Any other
// kind is a structural failure: a diagnostic is pushed and a hard error
// returned.
func (p *Parser) expect(kind token.Kind) (report.Span, error) {
	if p.cur.Kind != kind {
		p.Report.Errorf("expected %v, found %v", kind, p.cur.Kind).With(
			report.Tagged(report.TagUnexpectedToken),
			report.SnippetAtf(p.cur.Span, "expected %v here", kind),
		)
		return report.Span{}, errParse
	}
	span := p.cur.Span
	if err := p.advance(); err != nil {
		return report.Span{}, err
	}
	return span, nil
}

// sep consumes a terminal of the given kind along with its surrounding
// trivia.
func (p *Parser) sep(kind token.Kind, leading *report.Span) (cst.Sep, error) {
	before, err := p.resolveLeading(leading)
	if err != nil {
		return cst.Sep{}, err
	}
	tok, err := p.expect(kind)
	if err != nil {
		return cst.Sep{}, err
	}
	after, err := p.whitespace(false)
	if err != nil {
		return cst.Sep{}, err
	}
	return cst.Sep{Tok: tok, Ws: cst.Whitespace{Before: before, After: after}}, nil
}

// errParse is the hard error returned when the token stream cannot form the
// production being parsed. The details live in the diagnostic pushed
// alongside it.
var errParse = errors.New("parser: syntax error")

// text returns the raw lexeme under a token span.
func (p *Parser) text(span report.Span) string {
	return span.Text(p.file.Text())
}

// decodeString resolves the escapes in a string literal's lexeme, quotes
// included.
func decodeString(lexeme string) string {
	body := lexeme[1 : len(lexeme)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var out strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			out.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'r':
			out.WriteByte('\r')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'v':
			out.WriteByte('\v')
		case '0':
			out.WriteByte(0)
		case '\n':
			// A line continuation contributes nothing.
		default:
			out.WriteByte(body[i])
		}
	}
	return out.String()
}
