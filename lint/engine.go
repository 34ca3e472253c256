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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/parser"
	"github.com/driftlint/driftlint/report"
)

// Engine runs a fixed set of rules over files.
//
// An Engine is immutable after construction and safe for concurrent use;
// per-file state lives in the contexts built for each run.
type Engine struct {
	rules  []Rule
	levels map[string]report.Level // Empty entries default to Error.
	strict bool
}

// NewEngine builds an engine running the given rules at the severities the
// config assigns them. Rules the config turns off are dropped here, once,
// rather than skipped per node.
func NewEngine(cfg *Config, rules ...Rule) *Engine {
	e := &Engine{levels: make(map[string]report.Level)}
	for _, r := range rules {
		level, enabled := cfg.Level(r.Name())
		if !enabled {
			continue
		}
		e.rules = append(e.rules, r)
		e.levels[r.Name()] = level
	}
	e.strict = cfg.Strict
	return e
}

// Lint parses and checks a single file. The returned report holds parse
// diagnostics followed by rule diagnostics, sorted by position; a fatal parse
// error skips the rule pass but still reports what the parser saw.
func (e *Engine) Lint(file *report.File) report.Report {
	var opts []parser.Option
	if e.strict {
		opts = append(opts, parser.WithStrictMode())
	}
	script, rep, err := parser.Parse(file, opts...)
	if err == nil {
		e.Check(file, script, &rep)
	}
	rep.Sort()
	return rep
}

// LintAll lints files concurrently and returns one report per file, indexed
// like the input.
//
// The first context cancellation aborts the run; files not yet linted are
// left with nil reports.
func (e *Engine) LintAll(ctx context.Context, files []*report.File) ([]report.Report, error) {
	reports := make([]report.Report, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = e.Lint(file)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Check runs every rule over an already-parsed tree, appending to rep.
//
// Dispatch is pre-order over nodes with all rules applied at each node, so a
// run costs O(nodes × rules). Diagnostics covered by a suppression directive
// are dropped before they reach rep; internal errors are never suppressed.
func (e *Engine) Check(file *report.File, script *cst.Script, rep *report.Report) {
	tree := NewTree(script)
	directives := buildSuppressions(file, script)

	var staged report.Report
	ctxs := make([]*Context, len(e.rules))
	for i, r := range e.rules {
		ctxs[i] = &Context{
			File:   file,
			Script: script,
			rule:   r,
			level:  e.levels[r.Name()],
			sink:   &staged,
		}
	}

	disabled := make([]bool, len(e.rules))
	Walk(tree, func(n *Node) {
		for i, r := range e.rules {
			if disabled[i] {
				continue
			}
			e.check(r, n, ctxs[i], &disabled[i])
		}
	})

	for i := range staged {
		d := &staged[i]
		if d.Level != report.ICE && directives.suppressed(d.Primary().Start, d.Tag()) {
			continue
		}
		*rep = append(*rep, staged[i])
	}
}

// check isolates one rule invocation: a panic becomes an ICE diagnostic and
// disables the rule for the remainder of the file, leaving every other rule's
// output intact.
func (e *Engine) check(r Rule, n *Node, ctx *Context, disabled *bool) {
	defer func() {
		if panicked := recover(); panicked != nil {
			*disabled = true
			ctx.sink.ICEf("rule %s panicked: %v", r.Name(), panicked).With(
				report.Tagged(report.Tag(r.Name())),
				report.Snippet(n),
				report.Notef("the rule has been disabled for the rest of this file"),
			)
		}
	}()
	r.Check(n, ctx)
}
