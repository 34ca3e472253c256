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

package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/parser"
	"github.com/driftlint/driftlint/report"
	"github.com/driftlint/driftlint/token"
)

func span(start, end int) report.Span {
	return report.Span{Start: start, End: end}
}

func ws(b0, b1, a0, a1 int) cst.Whitespace {
	return cst.Whitespace{Before: span(b0, b1), After: span(a0, a1)}
}

func sep(t0, t1, b0, b1, a0, a1 int) cst.Sep {
	return cst.Sep{Tok: span(t0, t1), Ws: ws(b0, b1, a0, a1)}
}

func newParser(t *testing.T, text string) *parser.Parser {
	t.Helper()
	p, err := parser.New(report.NewFile("test.js", text))
	require.NoError(t, err)
	return p
}

func parseUnary(t *testing.T, text string) (cst.Expr, *parser.Parser) {
	t.Helper()
	p := newParser(t, text)
	expr, err := p.ParseUnary()
	require.NoError(t, err)
	return expr, p
}

func tags(r report.Report) []report.Tag {
	var out []report.Tag
	for i := range r {
		out = append(out, r[i].Tag())
	}
	return out
}

func TestPrefixUpdate(t *testing.T) {
	t.Parallel()

	expr, p := parseUnary(t, " ++ foo ")
	want := &cst.Update{
		Op: token.Increment, Prefix: true,
		Tok: span(1, 3), Ws: ws(0, 1, 3, 4),
		Operand: &cst.Ident{Name: "foo", Tok: span(4, 7), Ws: ws(4, 4, 7, 8)},
	}
	assert.Empty(t, cmp.Diff(want, expr))
	assert.Equal(t, span(1, 7), expr.Span())
	assert.Empty(t, p.Report)
}

func TestPostfixUpdate(t *testing.T) {
	t.Parallel()

	expr, p := parseUnary(t, "\nmk -- \n\n")
	want := &cst.Update{
		Op: token.Decrement, Prefix: false,
		Tok: span(4, 6), Ws: ws(4, 4, 6, 7),
		Operand: &cst.Ident{Name: "mk", Tok: span(1, 3), Ws: ws(0, 1, 3, 4)},
	}
	assert.Empty(t, cmp.Diff(want, expr))
	assert.Equal(t, span(1, 6), expr.Span())
	assert.Empty(t, p.Report)
}

// Two parses over one buffer: the first stops at the line terminator, leaving
// the `++` for the second.
func TestSequentialParses(t *testing.T) {
	t.Parallel()

	p := newParser(t, "--foo \n++5")

	first, err := p.ParseUnary()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(&cst.Update{
		Op: token.Decrement, Prefix: true,
		Tok: span(0, 2), Ws: ws(0, 0, 2, 2),
		Operand: &cst.Ident{Name: "foo", Tok: span(2, 5), Ws: ws(2, 2, 5, 6)},
	}, first))
	assert.Empty(t, p.Report)

	second, err := p.ParseUnary()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(&cst.Update{
		Op: token.Increment, Prefix: true,
		Tok: span(7, 9), Ws: ws(6, 7, 9, 9),
		Operand: &cst.Number{Tok: span(9, 10), Ws: ws(9, 9, 10, 10)},
	}, second))

	// `5` is not something `++` can write to.
	require.Equal(t, []report.Tag{report.TagInvalidAssignTarget}, tags(p.Report))
	assert.Equal(t, span(9, 10), p.Report[0].Primary().Span)
}

func TestPostfixOnLiteral(t *testing.T) {
	t.Parallel()

	expr, p := parseUnary(t, "true++")
	update, ok := expr.(*cst.Update)
	require.True(t, ok)
	assert.False(t, update.Prefix)
	assert.Equal(t, span(0, 6), update.Span())

	require.Equal(t, []report.Tag{report.TagInvalidAssignTarget}, tags(p.Report))
	assert.Equal(t, span(0, 4), p.Report[0].Primary().Span)
}

// A line terminator between operand and operator suppresses the postfix
// binding and leaves the operator unconsumed.
func TestPostfixLinebreakSuppression(t *testing.T) {
	t.Parallel()

	p := newParser(t, "foo\n++bar")

	first, err := p.ParseUnary()
	require.NoError(t, err)
	ident, ok := first.(*cst.Ident)
	require.True(t, ok)
	assert.Equal(t, "foo", ident.Name)

	second, err := p.ParseUnary()
	require.NoError(t, err)
	update, ok := second.(*cst.Update)
	require.True(t, ok)
	assert.True(t, update.Prefix)
	assert.Empty(t, p.Report)
}

// Every level of a prefix chain above the innermost sees an update expression
// as its operand and rejects it.
func TestPrefixChain(t *testing.T) {
	t.Parallel()

	expr, p := parseUnary(t, "++--x")
	outer, ok := expr.(*cst.Update)
	require.True(t, ok)
	_, ok = outer.Operand.(*cst.Update)
	require.True(t, ok)

	require.Equal(t, []report.Tag{report.TagInvalidAssignTarget}, tags(p.Report))
}

func TestGroupingNesting(t *testing.T) {
	t.Parallel()

	expr, p := parseUnary(t, "((foo))")
	want := &cst.Grouping{
		Open: sep(0, 1, 0, 0, 1, 1),
		Inner: &cst.Grouping{
			Open:  sep(1, 2, 1, 1, 2, 2),
			Inner: &cst.Ident{Name: "foo", Tok: span(2, 5), Ws: ws(2, 2, 5, 5)},
			Close: sep(5, 6, 5, 5, 6, 6),
		},
		Close: sep(6, 7, 6, 6, 7, 7),
	}
	assert.Empty(t, cmp.Diff(want, expr))
	assert.Equal(t, span(0, 7), expr.Span())
	assert.Empty(t, p.Report)
}

func TestGroupedRegex(t *testing.T) {
	t.Parallel()

	expr, p := parseUnary(t, "(/aa/g) ")
	want := &cst.Grouping{
		Open:  sep(0, 1, 0, 0, 1, 1),
		Inner: &cst.Regex{Tok: span(1, 6), Ws: ws(1, 1, 6, 6)},
		Close: sep(6, 7, 6, 6, 7, 8),
	}
	assert.Empty(t, cmp.Diff(want, expr))
	assert.Empty(t, p.Report)
}

func TestUnaryOperators(t *testing.T) {
	t.Parallel()

	expr, p := parseUnary(t, "delete obj.prop")
	unary, ok := expr.(*cst.Unary)
	require.True(t, ok)
	assert.Equal(t, token.KwDelete, unary.Op)
	_, ok = unary.Operand.(*cst.Member)
	require.True(t, ok)
	assert.Empty(t, p.Report)

	expr, p = parseUnary(t, "!!x")
	outer, ok := expr.(*cst.Unary)
	require.True(t, ok)
	inner, ok := outer.Operand.(*cst.Unary)
	require.True(t, ok)
	_, ok = inner.Operand.(*cst.Ident)
	require.True(t, ok)
	assert.Empty(t, p.Report)
}

func TestStrictDelete(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test.js", "delete foo")
	p, err := parser.New(file, parser.WithStrictMode())
	require.NoError(t, err)
	_, err = p.ParseUnary()
	require.NoError(t, err)
	require.Equal(t, []report.Tag{report.TagIdentifierDeletion}, tags(p.Report))

	// Deleting a property is fine in strict mode.
	p, err = parser.New(report.NewFile("test.js", "delete foo.bar"), parser.WithStrictMode())
	require.NoError(t, err)
	_, err = p.ParseUnary()
	require.NoError(t, err)
	assert.Empty(t, p.Report)

	// And deleting a variable is fine in sloppy mode.
	_, p = parseUnary(t, "delete foo")
	assert.Empty(t, p.Report)
}

func TestBinaryPrecedence(t *testing.T) {
	t.Parallel()

	p := newParser(t, "a + b * c")
	expr, err := p.ParseExpr()
	require.NoError(t, err)

	add, ok := expr.(*cst.Binary)
	require.True(t, ok)
	assert.Equal(t, token.Add, add.Op)
	mul, ok := add.Right.(*cst.Binary)
	require.True(t, ok)
	assert.Equal(t, token.Mul, mul.Op)

	// Same precedence associates left.
	p = newParser(t, "a - b - c")
	expr, err = p.ParseExpr()
	require.NoError(t, err)
	sub, ok := expr.(*cst.Binary)
	require.True(t, ok)
	_, ok = sub.Left.(*cst.Binary)
	require.True(t, ok)
}

func TestAssignment(t *testing.T) {
	t.Parallel()

	p := newParser(t, "a = b += 1")
	expr, err := p.ParseExpr()
	require.NoError(t, err)

	// Assignment is right-associative.
	outer, ok := expr.(*cst.Assign)
	require.True(t, ok)
	assert.Equal(t, token.Assign, outer.Op)
	inner, ok := outer.Value.(*cst.Assign)
	require.True(t, ok)
	assert.Equal(t, token.AddAssign, inner.Op)
	assert.Empty(t, p.Report)

	p = newParser(t, "a + b = c")
	_, err = p.ParseExpr()
	require.NoError(t, err)
	require.Equal(t, []report.Tag{report.TagInvalidAssignTarget}, tags(p.Report))
}

func TestStrictEvalAssignment(t *testing.T) {
	t.Parallel()

	p, err := parser.New(report.NewFile("test.js", "eval = 1"), parser.WithStrictMode())
	require.NoError(t, err)
	_, err = p.ParseExpr()
	require.NoError(t, err)
	require.Equal(t, []report.Tag{report.TagInvalidAssignTarget}, tags(p.Report))

	p = newParser(t, "eval = 1")
	_, err = p.ParseExpr()
	require.NoError(t, err)
	assert.Empty(t, p.Report)
}

func TestMemberAndCall(t *testing.T) {
	t.Parallel()

	p := newParser(t, "foo.bar(1, x).baz")
	expr, err := p.ParseExpr()
	require.NoError(t, err)

	member, ok := expr.(*cst.Member)
	require.True(t, ok)
	assert.Equal(t, "baz", member.Prop.Name)

	call, ok := member.Object.(*cst.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	require.Len(t, call.Commas, 1)

	callee, ok := call.Callee.(*cst.Member)
	require.True(t, ok)
	assert.Equal(t, "bar", callee.Prop.Name)
	assert.Empty(t, p.Report)
}

func TestExpectedExpression(t *testing.T) {
	t.Parallel()

	p := newParser(t, "++)")
	_, err := p.ParseUnary()
	require.Error(t, err)
	require.Equal(t, []report.Tag{report.TagUnexpectedToken}, tags(p.Report))
}

// reconstructor replays an expression's terminals in order, checking that
// their trivia and token spans tile the source with no gaps or overlaps.
type reconstructor struct {
	t    *testing.T
	text string
	out  strings.Builder
	pos  int
}

func (r *reconstructor) add(spans ...report.Span) {
	for _, s := range spans {
		if r.pos < 0 {
			r.pos = s.Start
		}
		require.Equal(r.t, r.pos, s.Start, "span %v does not tile at %d", s, r.pos)
		r.out.WriteString(s.Text(r.text))
		r.pos = s.End
	}
}

func (r *reconstructor) sep(s cst.Sep) {
	r.add(s.Ws.Before, s.Tok, s.Ws.After)
}

func (r *reconstructor) expr(e cst.Expr) {
	switch e := e.(type) {
	case *cst.Ident:
		r.add(e.Ws.Before, e.Tok, e.Ws.After)
	case *cst.Number:
		r.add(e.Ws.Before, e.Tok, e.Ws.After)
	case *cst.String:
		r.add(e.Ws.Before, e.Tok, e.Ws.After)
	case *cst.Regex:
		r.add(e.Ws.Before, e.Tok, e.Ws.After)
	case *cst.Bool:
		r.add(e.Ws.Before, e.Tok, e.Ws.After)
	case *cst.Null:
		r.add(e.Ws.Before, e.Tok, e.Ws.After)
	case *cst.This:
		r.add(e.Ws.Before, e.Tok, e.Ws.After)
	case *cst.Unary:
		r.add(e.Ws.Before, e.Tok, e.Ws.After)
		r.expr(e.Operand)
	case *cst.Update:
		if e.Prefix {
			r.add(e.Ws.Before, e.Tok, e.Ws.After)
			r.expr(e.Operand)
		} else {
			r.expr(e.Operand)
			r.add(e.Ws.Before, e.Tok, e.Ws.After)
		}
	case *cst.Grouping:
		r.sep(e.Open)
		r.expr(e.Inner)
		r.sep(e.Close)
	case *cst.Binary:
		r.expr(e.Left)
		r.sep(e.OpSep)
		r.expr(e.Right)
	case *cst.Member:
		r.expr(e.Object)
		r.sep(e.Dot)
		r.expr(e.Prop)
	case *cst.Call:
		r.expr(e.Callee)
		r.sep(e.Open)
		for i, arg := range e.Args {
			r.expr(arg)
			if i < len(e.Commas) {
				r.sep(e.Commas[i])
			}
		}
		r.sep(e.Close)
	case *cst.Assign:
		r.expr(e.Target)
		r.sep(e.OpSep)
		r.expr(e.Value)
	default:
		r.t.Fatalf("unexpected node %T", e)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		" ++ foo ",
		"((foo))",
		"(/aa/g) ",
		"a + b * (c - 1)",
		"foo.bar(1, x).baz",
		"delete obj.prop",
		"a = b += c",
		"typeof /* huh */ x",
		"f ( a , b )",
		"~ // trailing\n\tx",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			p := newParser(t, src)
			expr, err := p.ParseExpr()
			require.NoError(t, err)

			r := &reconstructor{t: t, text: src, pos: -1}
			r.expr(expr)
			assert.Equal(t, src, r.out.String())
		})
	}
}
