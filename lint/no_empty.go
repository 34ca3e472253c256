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
	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/report"
)

func init() {
	Register(NoEmpty{})
}

// NoEmpty flags blocks with no statements.
//
// A block containing only a comment is not flagged: the comment is taken as
// the author saying the emptiness is deliberate.
type NoEmpty struct{}

func (NoEmpty) Name() string { return "no-empty" }

func (NoEmpty) Check(node *Node, ctx *Context) {
	block, ok := node.Syntax.(*cst.BlockStmt)
	if !ok || len(block.Stmts) > 0 {
		return
	}

	span := block.Span()
	for _, comment := range ctx.Script.Comments {
		if comment.Start >= span.Start && comment.End <= span.End {
			return
		}
	}

	ctx.Diagnosef(node, "empty block").With(
		report.Helpf("add a statement, or a comment explaining why the block is empty"),
	)
}
