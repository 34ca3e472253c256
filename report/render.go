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
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// Style indicates how a diagnostic should be rendered to show a user.
type Style int

const (
	// Simple renders one line per diagnostic: path:line:col: level: message.
	Simple Style = 1 + iota
	// Monochrome renders annotated source snippets without color codes.
	Monochrome
)

// Render renders every diagnostic in the report against the given file.
//
// The report is sorted first, so output order is by primary span.
func (r Report) Render(style Style, file *File) string {
	r.Sort()
	var out strings.Builder
	for i := range r {
		out.WriteString(r[i].Render(style, file))
		if style == Monochrome && i+1 < len(r) {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// Render renders a single diagnostic against the given file.
func (d *Diagnostic) Render(style Style, file *File) string {
	switch style {
	case Simple:
		return d.renderSimple(file)
	case Monochrome:
		return d.renderSnippets(file)
	default:
		panic(fmt.Sprintf("report: unknown style %d", style))
	}
}

func (d *Diagnostic) renderSimple(file *File) string {
	loc := file.Location(d.Primary().Start)
	tag := ""
	if d.tag != "" {
		tag = fmt.Sprintf(" [%s]", d.tag)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s%s\n", file.Path(), loc.Line, loc.Column, d.Level, d.Err, tag)
}

// renderSnippets renders a diagnostic with each annotation shown as its
// source line with a run of markers beneath the annotated range.
func (d *Diagnostic) renderSnippets(file *File) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s: %s", d.Level, d.Err)
	if d.tag != "" {
		fmt.Fprintf(&out, " [%s]", d.tag)
	}
	out.WriteByte('\n')

	primary := d.Primary()
	loc := file.Location(primary.Start)
	margin := marginFor(file, d.annotations)
	fmt.Fprintf(&out, "%s--> %s:%d:%d\n", strings.Repeat(" ", margin), file.Path(), loc.Line, loc.Column)

	for _, a := range d.annotations {
		renderAnnotation(&out, file, a, margin)
	}
	for _, note := range d.notes {
		fmt.Fprintf(&out, "%s = note: %s\n", strings.Repeat(" ", margin), note)
	}
	for _, help := range d.help {
		fmt.Fprintf(&out, "%s = help: %s\n", strings.Repeat(" ", margin), help)
	}
	return out.String()
}

func renderAnnotation(out *strings.Builder, file *File, a Annotation, margin int) {
	line := file.LineSpan(a.Start)
	loc := file.Location(a.Start)
	text := line.Text(file.Text())

	// Clamp the annotation to its first line; multi-line spans are underlined
	// only up to the line break.
	end := min(a.End, line.End)

	marker := byte('-')
	if a.Primary {
		marker = '^'
	}

	// Widths are display widths, not byte counts, so that the markers land
	// under the annotated text even with tabs or wide runes present.
	lead := uniseg.StringWidth(text[:a.Start-line.Start])
	width := max(uniseg.StringWidth(text[a.Start-line.Start:end-line.Start]), 1)

	number := strconv.Itoa(loc.Line)
	pad := strings.Repeat(" ", margin)
	fmt.Fprintf(out, "%s%s | %s\n", number, pad[:margin-len(number)], text)
	fmt.Fprintf(out, "%s | %s%s", pad, strings.Repeat(" ", lead), strings.Repeat(string(marker), width))
	if a.Message != "" {
		fmt.Fprintf(out, " %s", a.Message)
	}
	out.WriteByte('\n')
}

// marginFor computes the gutter width: wide enough for the largest line
// number among the annotations.
func marginFor(file *File, annotations []Annotation) int {
	margin := 1
	for _, a := range annotations {
		margin = max(margin, len(strconv.Itoa(file.Location(a.Start).Line)))
	}
	return margin
}
