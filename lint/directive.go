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

package lint

import (
	"slices"
	"strings"

	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/internal/interval"
	"github.com/driftlint/driftlint/report"
)

// directivePrefix introduces a suppression comment:
//
//	// driftlint-ignore            suppresses every rule
//	// driftlint-ignore no-empty   suppresses the named rules
//
// A comment alone on its line covers the following line; a comment trailing
// code covers its own line.
const directivePrefix = "driftlint-ignore"

// directive is the parsed form of one suppression comment.
type directive struct {
	all   bool
	rules []string
}

// suppressions answers whether a diagnostic at a given offset is covered by a
// directive.
type suppressions struct {
	byOffset interval.Map[int, directive]
}

func buildSuppressions(file *report.File, script *cst.Script) *suppressions {
	s := &suppressions{}
	text := file.Text()

	for _, span := range script.Comments {
		body := commentBody(span.Text(text))
		rest, ok := strings.CutPrefix(body, directivePrefix)
		if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}

		d := directive{all: true}
		for _, name := range strings.FieldsFunc(rest, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}) {
			d.all = false
			d.rules = append(d.rules, name)
		}

		first := file.LineSpan(span.Start)
		last := file.LineSpan(span.End)
		target := last
		alone := strings.TrimSpace(text[first.Start:span.Start]) == "" &&
			strings.TrimSpace(text[span.End:last.End]) == ""
		if alone {
			// The comment has its lines to itself; it covers the next one.
			if last.End >= len(text) {
				continue
			}
			target = file.LineSpan(last.End + 1)
		}

		if overlap := s.byOffset.Insert(target.Start, target.End, d); overlap.Value != nil {
			// Two directives covering one line merge.
			overlap.Value.all = overlap.Value.all || d.all
			overlap.Value.rules = append(overlap.Value.rules, d.rules...)
		}
	}
	return s
}

// suppressed reports whether a diagnostic with the given primary start and
// tag is covered by a directive.
func (s *suppressions) suppressed(offset int, tag report.Tag) bool {
	found := s.byOffset.Get(offset)
	if found.Value == nil {
		return false
	}
	return found.Value.all || slices.Contains(found.Value.rules, string(tag))
}

// commentBody strips the comment delimiters and surrounding space from a
// comment token's text.
func commentBody(text string) string {
	switch {
	case strings.HasPrefix(text, "//"):
		text = text[2:]
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(text[2:], "*/")
	}
	return strings.TrimSpace(text)
}
