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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlint/driftlint/report"
)

func TestLocations(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test.js", "let x = 1;\nlet y = 2;\n\nfoo(x, y);")

	assert.Equal(t, report.Location{Offset: 0, Line: 1, Column: 1}, file.Location(0))
	assert.Equal(t, report.Location{Offset: 4, Line: 1, Column: 5}, file.Location(4))
	assert.Equal(t, report.Location{Offset: 11, Line: 2, Column: 1}, file.Location(11))
	assert.Equal(t, report.Location{Offset: 22, Line: 3, Column: 1}, file.Location(22))
	assert.Equal(t, report.Location{Offset: 23, Line: 4, Column: 1}, file.Location(23))
	assert.Equal(t, report.Location{Offset: 33, Line: 4, Column: 11}, file.Location(33))

	assert.Equal(t, file.Span(11, 21), file.LineSpan(15))
	assert.Equal(t, file.Span(23, 33), file.LineSpan(33))
}

func TestSpanBounds(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { report.NewSpan(2, 1) })
	assert.Equal(t, 3, report.NewSpan(2, 5).Len())
	assert.True(t, report.NewSpan(4, 4).IsEmpty())
	assert.Equal(t, report.NewSpan(1, 8), report.NewSpan(1, 3).Join(report.NewSpan(6, 8)))
}

func TestSortAndCount(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Warnf("second").With(report.SnippetAtf(report.NewSpan(10, 12), ""))
	r.Errorf("first").With(report.SnippetAtf(report.NewSpan(0, 4), ""))
	r.Errorf("third").With(report.SnippetAtf(report.NewSpan(10, 11), ""))

	r.Sort()
	require.Len(t, r, 3)
	assert.Equal(t, "first", r[0].Err.Error())
	// Equal start offsets keep insertion order.
	assert.Equal(t, "second", r[1].Err.Error())
	assert.Equal(t, "third", r[2].Err.Error())

	assert.Equal(t, 2, r.Count(report.Error))
	assert.Equal(t, 3, r.Count(report.Warning))
}

func TestDiagnosticOptions(t *testing.T) {
	t.Parallel()

	var r report.Report
	d := r.Errorf("invalid assignment target").With(
		report.Tagged(report.TagInvalidAssignTarget),
		report.SnippetAtf(report.NewSpan(0, 4), "not a valid expression for the operator"),
		report.SnippetAtf(report.NewSpan(4, 6), "postfix `++` used here"),
		report.Helpf("only identifiers and member expressions may be assigned to"),
	)

	assert.True(t, d.Is(report.TagInvalidAssignTarget))
	require.Len(t, d.Annotations(), 2)
	assert.True(t, d.Annotations()[0].Primary)
	assert.False(t, d.Annotations()[1].Primary)
	assert.Equal(t, report.NewSpan(0, 4), d.Primary().Span)

	// Nil options are skipped rather than dereferenced.
	d.With(report.Snippet(nil))
	assert.Len(t, d.Annotations(), 2)
}

func TestRenderSimple(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test.js", "true++\n")
	var r report.Report
	r.Errorf("invalid assignment target").With(
		report.Tagged(report.TagInvalidAssignTarget),
		report.SnippetAtf(report.NewSpan(0, 4), ""),
	)

	assert.Equal(t,
		"test.js:1:1: error: invalid assignment target [invalid-assign-target]\n",
		r.Render(report.Simple, file))
}

func TestRenderMonochrome(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test.js", "true++\n")
	var r report.Report
	r.Errorf("invalid assignment target").With(
		report.Tagged(report.TagInvalidAssignTarget),
		report.SnippetAtf(report.NewSpan(0, 4), "not a valid expression for the operator"),
		report.SnippetAtf(report.NewSpan(4, 6), "postfix `++` used here"),
	)

	assert.Equal(t,
		"error: invalid assignment target [invalid-assign-target]\n"+
			" --> test.js:1:1\n"+
			"1 | true++\n"+
			"  | ^^^^ not a valid expression for the operator\n"+
			"1 | true++\n"+
			"  |     -- postfix `++` used here\n",
		r.Render(report.Monochrome, file))
}
