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

// Package report provides spans, structured diagnostics, and the sink they
// accumulate in.
//
// Both the parser and the lint engine push diagnostics onto a [Report]. A
// diagnostic is never mutated once its options have been applied; the report
// is append-only, and presentation order is obtained with [Report.Sort].
package report

import (
	"fmt"
	"sort"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// ICE indicates a bug inside the linter itself, such as a rule panicking.
	ICE Level = 1 + iota
	// Error indicates a syntactic or semantic constraint violation.
	Error
	// Warning indicates something that probably should not be ignored.
	Warning
	// Remark is the diagnostics version of "info".
	Remark
)

func (l Level) String() string {
	switch l {
	case ICE:
		return "internal error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

// Tag is a machine-readable identification for a diagnostic: a parser
// taxonomy entry such as [TagInvalidAssignTarget], or the stable name of the
// lint rule that produced it.
//
// Tags are lowercase identifiers separated by dashes.
type Tag string

// Parse-time diagnostic taxonomy.
const (
	// TagUnexpectedToken diagnoses a token that cannot start or continue the
	// production being parsed.
	TagUnexpectedToken Tag = "unexpected-token"
	// TagUnterminated diagnoses a string, comment, or regex that runs to EOF.
	TagUnterminated Tag = "unterminated-literal"
	// TagUnrecognized diagnoses a byte that cannot begin any token.
	TagUnrecognized Tag = "unrecognized-character"
	// TagInvalidAssignTarget diagnoses an expression used as the operand of an
	// assignment or update operator that cannot legally be assigned to.
	TagInvalidAssignTarget Tag = "invalid-assign-target"
	// TagIdentifierDeletion diagnoses `delete ident` in strict mode code.
	TagIdentifierDeletion Tag = "identifier-deletion"
	// TagMissingSemicolon diagnoses a statement with no terminating semicolon
	// at a position where automatic semicolon insertion does not apply.
	TagMissingSemicolon Tag = "missing-semicolon"
)

// Diagnostic is a structured, span-located report of a syntactic or semantic
// issue. It is independent of whether the condition that produced it was
// fatal.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used as
	// the diagnostic message.
	Err error

	// The kind of diagnostic this is.
	Level Level

	tag         Tag
	annotations []Annotation
	notes, help []string
}

// Annotation is a labeled source span within a [Diagnostic].
type Annotation struct {
	Span

	// A message to show under this span. May be empty.
	Message string

	// Whether this is the "primary" annotation, rendered in the same color as
	// the overall diagnostic.
	Primary bool
}

// Tag returns this diagnostic's tag.
func (d *Diagnostic) Tag() Tag {
	return d.tag
}

// Is checks whether this diagnostic has a particular tag.
func (d *Diagnostic) Is(tag Tag) bool {
	return d.tag == tag
}

// Annotations returns the labeled spans attached to this diagnostic.
func (d *Diagnostic) Annotations() []Annotation {
	return d.annotations
}

// Notes returns the notes attached to this diagnostic.
func (d *Diagnostic) Notes() []string { return d.notes }

// Help returns the help messages attached to this diagnostic.
func (d *Diagnostic) Help() []string { return d.help }

// Primary returns this diagnostic's primary annotation, if it has one.
//
// If it doesn't have one, it returns the zero annotation.
func (d *Diagnostic) Primary() Annotation {
	for _, a := range d.annotations {
		if a.Primary {
			return a
		}
	}
	return Annotation{}
}

// With applies the given options to this diagnostic.
//
// Nil options are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// Tagged returns a DiagnosticOption that sets the diagnostic's tag.
func Tagged(tag Tag) DiagnosticOption {
	return func(d *Diagnostic) { d.tag = tag }
}

// Snippet returns a DiagnosticOption that adds an unlabeled annotation.
//
// The first annotation added is the "primary" annotation. If at is nil, this
// returns a nil option, which [Diagnostic.With] skips.
func Snippet(at Spanner) DiagnosticOption {
	return Snippetf(at, "")
}

// Snippetf returns a DiagnosticOption that adds an annotation with a message.
func Snippetf(at Spanner, format string, args ...any) DiagnosticOption {
	if at == nil {
		return nil
	}
	return SnippetAtf(at.Span(), format, args...)
}

// SnippetAtf is like [Snippetf], but takes a span directly.
func SnippetAtf(span Span, format string, args ...any) DiagnosticOption {
	annotation := Annotation{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
	return func(d *Diagnostic) {
		annotation.Primary = len(d.annotations) == 0
		d.annotations = append(d.annotations, annotation)
	}
}

// Notef returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the annotations.
func Notef(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Helpf returns a DiagnosticOption that provides the user with a prose
// suggestion for resolving the diagnostic.
func Helpf(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.help = append(d.help, fmt.Sprintf(format, args...))
	}
}

// Report is an append-only collection of diagnostics.
type Report []Diagnostic

// Errorf creates a new error diagnostic; analogous to [fmt.Errorf].
//
// Options are applied with [Diagnostic.With] on the returned value.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Error)
}

// Warnf creates a new warning diagnostic; analogous to [fmt.Errorf].
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Warning)
}

// Remarkf creates a new remark diagnostic; analogous to [fmt.Errorf].
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Remark)
}

// ICEf creates a new internal-error diagnostic.
func (r *Report) ICEf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), ICE)
}

// Sort orders diagnostics by ascending primary-span start offset. Diagnostics
// with equal starts keep their insertion order, which makes presentation
// deterministic regardless of how the report was produced.
func (r Report) Sort() {
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].Primary().Start < r[j].Primary().Start
	})
}

// Count returns how many diagnostics are at or above the given level.
// Remember that levels decrease in severity: Count(Error) counts errors
// and ICEs.
func (r Report) Count(level Level) int {
	var n int
	for i := range r {
		if r[i].Level <= level {
			n++
		}
	}
	return n
}

func (r *Report) push(err error, level Level) *Diagnostic {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	return &(*r)[len(*r)-1]
}
