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

// Package lexer turns JavaScript source text into a pull-based token stream.
//
// Trivia is not skipped: whitespace runs, line terminators, and comments are
// yielded as ordinary tokens, since the parser tracks their extents and must
// be able to tell whether the trivia between two tokens contained a line
// terminator.
package lexer

import (
	"fmt"
	"strings"

	"github.com/driftlint/driftlint/report"
	"github.com/driftlint/driftlint/token"
)

// Error is a fatal lexical error: the input cannot produce a valid token at
// the failure position.
type Error struct {
	Tag  report.Tag
	Msg  string
	Span report.Span
}

func (e *Error) Error() string {
	return e.Msg
}

// Diagnose writes this error out to the given diagnostic.
func (e *Error) Diagnose(d *report.Diagnostic) {
	d.With(report.Tagged(e.Tag), report.Snippet(e.Span))
}

// Lexer is a pull-based lexer over a single source file.
type Lexer struct {
	file *report.File
	text string
	pos  int

	// The kind of the last non-trivia token, used to decide whether a `/`
	// begins a regex literal or a division operator.
	prev token.Kind
}

// Mark is a saved lexer position, produced by [Lexer.Mark] and restored by
// [Lexer.Rewind].
type Mark struct {
	owner *Lexer
	pos   int
	prev  token.Kind
}

// New constructs a lexer over the given file.
func New(file *report.File) *Lexer {
	return &Lexer{file: file, text: file.Text()}
}

// Mark saves the current position so that tokens consumed during a lookahead
// can be un-consumed with [Lexer.Rewind].
func (l *Lexer) Mark() Mark {
	return Mark{owner: l, pos: l.pos, prev: l.prev}
}

// Rewind restores a position previously saved with [Lexer.Mark].
//
// Panics if mark was created by a different lexer.
func (l *Lexer) Rewind(mark Mark) {
	if mark.owner != l {
		panic("lexer: rewound using another lexer's mark")
	}
	l.pos = mark.pos
	l.prev = mark.prev
}

// Next returns the next token, advancing past it. At end of input it returns
// an EOF token with a zero-width span, forever.
//
// The returned error is non-nil only for malformed input (unterminated
// literals, bytes that cannot begin a token); it carries the diagnostic
// describing the failure.
func (l *Lexer) Next() (token.Token, error) {
	start := l.pos
	if start >= len(l.text) {
		return token.Token{Kind: token.EOF, Span: l.file.EOF()}, nil
	}

	c := l.text[start]
	switch {
	case c == '\n' || c == '\r':
		l.pos++
		if c == '\r' && l.at(l.pos) == '\n' {
			l.pos++
		}
		return l.emit(token.Linebreak, start), nil

	case c == ' ' || c == '\t' || c == '\f' || c == '\v':
		l.pos++
		for isSameLineSpace(l.at(l.pos)) {
			l.pos++
		}
		return l.emit(token.Whitespace, start), nil

	case c == '/' && l.at(start+1) == '/':
		nl := strings.IndexAny(l.text[start:], "\r\n")
		if nl < 0 {
			l.pos = len(l.text)
		} else {
			l.pos = start + nl
		}
		return l.emit(token.LineComment, start), nil

	case c == '/' && l.at(start+1) == '*':
		end := strings.Index(l.text[start+2:], "*/")
		if end < 0 {
			l.pos = len(l.text)
			return token.Token{}, &Error{
				Tag:  report.TagUnterminated,
				Msg:  "unterminated block comment",
				Span: l.file.Span(start, start+2),
			}
		}
		l.pos = start + 2 + end + 2
		return l.emit(token.BlockComment, start), nil

	case isIdentStart(c):
		for isIdentPart(l.at(l.pos)) {
			l.pos++
		}
		kind := token.Ident
		if kw, ok := token.Keywords[l.text[start:l.pos]]; ok {
			kind = kw
		}
		return l.emit(kind, start), nil

	case c >= '0' && c <= '9':
		return l.lexNumber(start)

	case c == '"' || c == '\'':
		return l.lexString(start)

	case c == '/' && l.regexAllowed():
		return l.lexRegex(start)

	default:
		return l.lexOperator(start)
	}
}

// emit builds a token ending at the current position and updates the
// previous-kind state used for regex disambiguation.
func (l *Lexer) emit(kind token.Kind, start int) token.Token {
	if !kind.IsTrivia() {
		l.prev = kind
	}
	return token.Token{Kind: kind, Span: l.file.Span(start, l.pos)}
}

// regexAllowed reports whether a `/` at the current position begins a regex
// literal. A `/` is a division operator only after a token that can end an
// expression.
func (l *Lexer) regexAllowed() bool {
	switch l.prev {
	case token.Ident, token.Number, token.String, token.Regex,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwThis,
		token.RParen, token.RBracket, token.Increment, token.Decrement:
		return false
	default:
		return true
	}
}

func (l *Lexer) lexNumber(start int) (token.Token, error) {
	if l.text[start] == '0' && (l.at(start+1) == 'x' || l.at(start+1) == 'X') {
		l.pos = start + 2
		for isHexDigit(l.at(l.pos)) {
			l.pos++
		}
		if l.pos == start+2 {
			return token.Token{}, &Error{
				Tag:  report.TagUnrecognized,
				Msg:  "hex literal needs at least one digit",
				Span: l.file.Span(start, l.pos),
			}
		}
	} else {
		l.pos = start
		for isDigit(l.at(l.pos)) {
			l.pos++
		}
		if l.at(l.pos) == '.' {
			l.pos++
			for isDigit(l.at(l.pos)) {
				l.pos++
			}
		}
		if e := l.at(l.pos); e == 'e' || e == 'E' {
			l.pos++
			if s := l.at(l.pos); s == '+' || s == '-' {
				l.pos++
			}
			if !isDigit(l.at(l.pos)) {
				return token.Token{}, &Error{
					Tag:  report.TagUnrecognized,
					Msg:  "exponent needs at least one digit",
					Span: l.file.Span(start, l.pos),
				}
			}
			for isDigit(l.at(l.pos)) {
				l.pos++
			}
		}
	}

	if isIdentStart(l.at(l.pos)) {
		return token.Token{}, &Error{
			Tag:  report.TagUnrecognized,
			Msg:  "identifier may not directly follow a number",
			Span: l.file.Span(start, l.pos+1),
		}
	}
	return l.emit(token.Number, start), nil
}

func (l *Lexer) lexString(start int) (token.Token, error) {
	quote := l.text[start]
	l.pos = start + 1
	for l.pos < len(l.text) {
		switch c := l.text[l.pos]; {
		case c == quote:
			l.pos++
			return l.emit(token.String, start), nil
		case c == '\\':
			l.pos += 2
		case c == '\n' || c == '\r':
			return token.Token{}, &Error{
				Tag:  report.TagUnterminated,
				Msg:  "unterminated string literal",
				Span: l.file.Span(start, l.pos),
			}
		default:
			l.pos++
		}
	}
	return token.Token{}, &Error{
		Tag:  report.TagUnterminated,
		Msg:  "unterminated string literal",
		Span: l.file.Span(start, len(l.text)),
	}
}

func (l *Lexer) lexRegex(start int) (token.Token, error) {
	l.pos = start + 1
	inClass := false
	for l.pos < len(l.text) {
		switch c := l.text[l.pos]; {
		case c == '\\':
			l.pos += 2
		case c == '[':
			inClass = true
			l.pos++
		case c == ']':
			inClass = false
			l.pos++
		case c == '/' && !inClass:
			l.pos++
			for isIdentPart(l.at(l.pos)) { // Flags.
				l.pos++
			}
			return l.emit(token.Regex, start), nil
		case c == '\n' || c == '\r':
			return token.Token{}, &Error{
				Tag:  report.TagUnterminated,
				Msg:  "unterminated regex literal",
				Span: l.file.Span(start, l.pos),
			}
		default:
			l.pos++
		}
	}
	return token.Token{}, &Error{
		Tag:  report.TagUnterminated,
		Msg:  "unterminated regex literal",
		Span: l.file.Span(start, len(l.text)),
	}
}

// operators maps each operator and punctuation lexeme to its kind, tried
// longest-first.
var operators = []struct {
	text string
	kind token.Kind
}{
	{">>>=", token.UShrAssign},
	{"===", token.StrictEq},
	{"!==", token.StrictNeq},
	{">>>", token.UShr},
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{"++", token.Increment},
	{"--", token.Decrement},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"<=", token.LessEq},
	{">=", token.GreaterEq},
	{"==", token.Eq},
	{"!=", token.NotEq},
	{"&&", token.LogicalAnd},
	{"||", token.LogicalOr},
	{"+=", token.AddAssign},
	{"-=", token.SubAssign},
	{"*=", token.MulAssign},
	{"/=", token.DivAssign},
	{"%=", token.ModAssign},
	{"&=", token.AndAssign},
	{"|=", token.OrAssign},
	{"^=", token.XorAssign},
	{"(", token.LParen},
	{")", token.RParen},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{";", token.Semicolon},
	{",", token.Comma},
	{".", token.Dot},
	{":", token.Colon},
	{"?", token.Question},
	{"+", token.Add},
	{"-", token.Sub},
	{"*", token.Mul},
	{"/", token.Div},
	{"%", token.Mod},
	{"!", token.LogicalNot},
	{"~", token.BitwiseNot},
	{"&", token.BitwiseAnd},
	{"|", token.BitwiseOr},
	{"^", token.BitwiseXor},
	{"<", token.Less},
	{">", token.Greater},
	{"=", token.Assign},
}

func (l *Lexer) lexOperator(start int) (token.Token, error) {
	rest := l.text[start:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op.text) {
			l.pos = start + len(op.text)
			return l.emit(op.kind, start), nil
		}
	}
	l.pos = start + 1
	return token.Token{}, &Error{
		Tag:  report.TagUnrecognized,
		Msg:  fmt.Sprintf("unexpected character %q", l.text[start]),
		Span: l.file.Span(start, start+1),
	}
}

// at returns the byte at the given offset, or 0 past the end of input.
func (l *Lexer) at(i int) byte {
	if i >= len(l.text) {
		return 0
	}
	return l.text[i]
}

func isSameLineSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f' || c == '\v'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
