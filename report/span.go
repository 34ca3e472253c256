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

package report

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Span is a half-open byte offset range [Start, End) into a source file.
//
// A span does not remember which file it came from; the parser operates on a
// single file at a time, and diagnostics bind spans to a [File] when they are
// rendered.
type Span struct {
	Start, End int
}

// NewSpan constructs a span. Panics if start > end, since such a span cannot
// describe any source text.
func NewSpan(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("report: invalid span bounds %d > %d", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns whether this span is zero-width.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Text returns the text this span covers within text.
func (s Span) Text(text string) string {
	return text[s.Start:s.End]
}

// Join returns the smallest span containing both s and o.
func (s Span) Join(o Span) Span {
	return Span{Start: min(s.Start, o.Start), End: max(s.End, o.End)}
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// Spanner is any type that has a span, such as a token or a syntax tree node.
type Spanner interface {
	Span() Span
}

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, both 1-indexed.
	Line, Column int
}

// File is a source file: a path for display purposes and the complete text.
//
// A File lazily indexes its line starts, permitting O(log n) conversion of
// byte offsets into [Location]s. The index is computed at most once, so a File
// must not be copied after first use.
type File struct {
	path, text string

	once sync.Once
	// Byte offsets of the start of each line; lines[0] is always 0. Given an
	// offset, the line containing it is recovered by binary search.
	lines []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns the display path for this file.
func (f *File) Path() string { return f.path }

// Text returns the complete text of this file.
func (f *File) Text() string { return f.text }

// Span constructs a span and validates it against the file's bounds.
func (f *File) Span(start, end int) Span {
	if end > len(f.text) {
		panic(fmt.Sprintf("report: span %d:%d out of bounds for %q (%d bytes)", start, end, f.path, len(f.text)))
	}
	return NewSpan(start, end)
}

// EOF returns a zero-width span at the end of the file.
func (f *File) EOF() Span {
	return Span{Start: len(f.text), End: len(f.text)}
}

// Location converts a byte offset into a full location. Columns count bytes,
// 1-indexed; rendering code applies display widths separately.
func (f *File) Location(offset int) Location {
	f.once.Do(func() {
		f.lines = append(f.lines, 0)
		text := f.text
		var total int
		for {
			nl := strings.IndexByte(text, '\n')
			if nl < 0 {
				break
			}
			total += nl + 1
			f.lines = append(f.lines, total)
			text = text[nl+1:]
		}
	})

	// Find the greatest line start <= offset.
	line, exact := slices.BinarySearch(f.lines, offset)
	if !exact {
		line--
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: offset - f.lines[line] + 1,
	}
}

// LineSpan returns the span of the line containing offset, excluding the
// trailing newline.
func (f *File) LineSpan(offset int) Span {
	loc := f.Location(offset)
	start := f.lines[loc.Line-1]
	end := len(f.text)
	if loc.Line < len(f.lines) {
		end = f.lines[loc.Line] - 1 // Exclude the \n itself.
	}
	return Span{Start: start, End: end}
}
