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

// Package lint dispatches static-analysis rules over parsed syntax trees.
//
// Rules are independent of one another: each sees every node of the tree, and
// the diagnostics of a run are the union of what each rule produced. A rule
// that panics is reported as an internal error and disabled for the rest of
// the file; it cannot take the other rules down with it.
package lint

import (
	"fmt"
	"sort"

	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/report"
)

// Rule is a single static-analysis check.
//
// Check is called once per node, in pre-order. Implementations must not
// mutate the tree, and must not retain node or ctx past the call.
type Rule interface {
	// Name returns the rule's stable, dash-separated name. It doubles as the
	// tag on every diagnostic the rule produces and as the name suppression
	// directives refer to.
	Name() string

	Check(node *Node, ctx *Context)
}

// Context carries everything a rule may consult about the file being checked,
// plus the diagnostic sink.
type Context struct {
	File   *report.File
	Script *cst.Script

	rule  Rule
	level report.Level
	sink  *report.Report
}

// Diagnosef opens a diagnostic at the rule's configured severity, tagged with
// the rule's name and annotated at the given node or span.
//
// Further options are applied with [report.Diagnostic.With] on the returned
// value.
func (c *Context) Diagnosef(at report.Spanner, format string, args ...any) *report.Diagnostic {
	var d *report.Diagnostic
	if c.level == report.Warning {
		d = c.sink.Warnf(format, args...)
	} else {
		d = c.sink.Errorf(format, args...)
	}
	return d.With(
		report.Tagged(report.Tag(c.rule.Name())),
		report.Snippet(at),
	)
}

// Text returns the source text a node covers.
func (c *Context) Text(at report.Spanner) string {
	return at.Span().Text(c.File.Text())
}

var registry = map[string]Rule{}

// Register adds a rule to the global registry consulted by [All]. Panics if
// the name is already taken.
func Register(r Rule) {
	if _, ok := registry[r.Name()]; ok {
		panic(fmt.Sprintf("lint: rule %q registered twice", r.Name()))
	}
	registry[r.Name()] = r
}

// All returns every registered rule, sorted by name.
func All() []Rule {
	rules := make([]Rule, 0, len(registry))
	for _, r := range registry {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Name() < rules[j].Name() })
	return rules
}
