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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/parser"
	"github.com/driftlint/driftlint/report"
	"github.com/driftlint/driftlint/token"
)

func parseScript(t *testing.T, text string, opts ...parser.Option) (*cst.Script, report.Report) {
	t.Helper()
	script, rep, err := parser.Parse(report.NewFile("test.js", text), opts...)
	require.NoError(t, err)
	return script, rep
}

// `a\n++b` is two statements: the line terminator suppresses the postfix
// binding and triggers semicolon insertion.
func TestScriptASI(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "a\n++b")
	require.Len(t, script.Stmts, 2)
	assert.Empty(t, rep)

	first, ok := script.Stmts[0].(*cst.ExprStmt)
	require.True(t, ok)
	assert.Nil(t, first.Semi)
	_, ok = first.Expr.(*cst.Ident)
	require.True(t, ok)

	second, ok := script.Stmts[1].(*cst.ExprStmt)
	require.True(t, ok)
	update, ok := second.Expr.(*cst.Update)
	require.True(t, ok)
	assert.True(t, update.Prefix)
}

func TestMissingSemicolon(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "a b")
	require.Len(t, script.Stmts, 2)
	require.Equal(t, []report.Tag{report.TagMissingSemicolon}, tags(rep))
	// The diagnostic points directly after the first expression.
	assert.Equal(t, span(1, 1), rep[0].Primary().Span)
}

func TestUseStrictPrologue(t *testing.T) {
	t.Parallel()

	_, rep := parseScript(t, "\"use strict\";\ndelete foo;")
	require.Equal(t, []report.Tag{report.TagIdentifierDeletion}, tags(rep))

	// Property deletion stays legal under the prologue.
	_, rep = parseScript(t, "\"use strict\";\ndelete foo.bar;")
	assert.Empty(t, rep)

	// Without the prologue the same code is fine.
	_, rep = parseScript(t, "delete foo;")
	assert.Empty(t, rep)

	// A directive after a non-directive statement has no effect.
	_, rep = parseScript(t, "x;\n\"use strict\";\ndelete foo;")
	assert.Empty(t, rep)
}

func TestStrictModeOption(t *testing.T) {
	t.Parallel()

	_, rep := parseScript(t, "delete foo;", parser.WithStrictMode())
	require.Equal(t, []report.Tag{report.TagIdentifierDeletion}, tags(rep))
}

func TestEmptyAndBlock(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "{ ; }")
	require.Len(t, script.Stmts, 1)
	assert.Empty(t, rep)

	block, ok := script.Stmts[0].(*cst.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 1)
	_, ok = block.Stmts[0].(*cst.EmptyStmt)
	require.True(t, ok)
}

func TestIfElse(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "if (a) b(); else { }")
	require.Len(t, script.Stmts, 1)
	assert.Empty(t, rep)

	stmt, ok := script.Stmts[0].(*cst.IfStmt)
	require.True(t, ok)
	_, ok = stmt.Cond.(*cst.Ident)
	require.True(t, ok)

	body, ok := stmt.Body.(*cst.ExprStmt)
	require.True(t, ok)
	_, ok = body.Expr.(*cst.Call)
	require.True(t, ok)

	require.NotNil(t, stmt.Else)
	elseBody, ok := stmt.ElseBody.(*cst.BlockStmt)
	require.True(t, ok)
	assert.Empty(t, elseBody.Stmts)

	// No else clause leaves both fields nil.
	script, _ = parseScript(t, "if (a) ;")
	stmt, ok = script.Stmts[0].(*cst.IfStmt)
	require.True(t, ok)
	assert.Nil(t, stmt.Else)
	assert.Nil(t, stmt.ElseBody)
}

func TestForHeads(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "for (i = 0; i < n; i++) sum += i;")
	assert.Empty(t, rep)
	stmt, ok := script.Stmts[0].(*cst.ForStmt)
	require.True(t, ok)
	_, ok = stmt.Init.(*cst.Assign)
	require.True(t, ok)
	_, ok = stmt.Test.(*cst.Binary)
	require.True(t, ok)
	update, ok := stmt.Update.(*cst.Update)
	require.True(t, ok)
	assert.False(t, update.Prefix)

	script, rep = parseScript(t, "for (;;) ;")
	assert.Empty(t, rep)
	stmt, ok = script.Stmts[0].(*cst.ForStmt)
	require.True(t, ok)
	assert.Nil(t, stmt.Init)
	assert.Nil(t, stmt.Test)
	assert.Nil(t, stmt.Update)
	_, ok = stmt.Body.(*cst.EmptyStmt)
	require.True(t, ok)
}

func TestForIn(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "for (k in obj) ;")
	assert.Empty(t, rep)
	stmt, ok := script.Stmts[0].(*cst.ForInStmt)
	require.True(t, ok)
	left, ok := stmt.Left.(*cst.Ident)
	require.True(t, ok)
	assert.Equal(t, "k", left.Name)

	// Outside a for head, `in` is an ordinary binary operator.
	script, rep = parseScript(t, "a in b;")
	assert.Empty(t, rep)
	expr, ok := script.Stmts[0].(*cst.ExprStmt)
	require.True(t, ok)
	binary, ok := expr.Expr.(*cst.Binary)
	require.True(t, ok)
	assert.Equal(t, token.KwIn, binary.Op)
}

func TestWhileLoops(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "while (a) b();")
	assert.Empty(t, rep)
	_, ok := script.Stmts[0].(*cst.WhileStmt)
	require.True(t, ok)

	script, rep = parseScript(t, "do ; while (a)")
	assert.Empty(t, rep)
	doStmt, ok := script.Stmts[0].(*cst.DoWhileStmt)
	require.True(t, ok)
	assert.Nil(t, doStmt.Semi)

	script, _ = parseScript(t, "do ; while (a);")
	doStmt, ok = script.Stmts[0].(*cst.DoWhileStmt)
	require.True(t, ok)
	assert.NotNil(t, doStmt.Semi)
}

func TestLabelled(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "loop: while (a) b();")
	assert.Empty(t, rep)
	stmt, ok := script.Stmts[0].(*cst.LabelledStmt)
	require.True(t, ok)
	assert.Equal(t, "loop", stmt.Label.Name)
	_, ok = stmt.Body.(*cst.WhileStmt)
	require.True(t, ok)

	// An identifier not followed by a colon is an expression statement.
	script, _ = parseScript(t, "loop;")
	_, ok = script.Stmts[0].(*cst.ExprStmt)
	require.True(t, ok)
}

func TestWith(t *testing.T) {
	t.Parallel()

	script, rep := parseScript(t, "with (o) f();")
	assert.Empty(t, rep)
	stmt, ok := script.Stmts[0].(*cst.WithStmt)
	require.True(t, ok)
	_, ok = stmt.Object.(*cst.Ident)
	require.True(t, ok)
}

func TestScriptComments(t *testing.T) {
	t.Parallel()

	src := "a; // trailing\n/* block */ b;"
	script, rep := parseScript(t, src)
	assert.Empty(t, rep)
	require.Len(t, script.Stmts, 2)

	require.Len(t, script.Comments, 2)
	assert.Equal(t, "// trailing", script.Comments[0].Text(src))
	assert.Equal(t, "/* block */", script.Comments[1].Text(src))
}

func TestFatalLexError(t *testing.T) {
	t.Parallel()

	_, rep, err := parser.Parse(report.NewFile("test.js", "'unterminated"))
	require.Error(t, err)
	require.Equal(t, []report.Tag{report.TagUnterminated}, tags(rep))
}

func TestScriptSpan(t *testing.T) {
	t.Parallel()

	src := "  a;\n"
	script, _ := parseScript(t, src)
	assert.Equal(t, span(0, len(src)), script.Span())
	assert.Equal(t, cst.KindScript, script.Kind())
}
