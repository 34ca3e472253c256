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
	Register(NoExtraSemi{})
}

// NoExtraSemi flags semicolons that terminate nothing.
//
// An empty statement is legitimate only as the body of a control statement,
// as in `while (poll()) ;`. Anywhere else — directly in a block, or at the
// top level — it is a leftover.
type NoExtraSemi struct{}

func (NoExtraSemi) Name() string { return "no-extra-semi" }

func (NoExtraSemi) Check(node *Node, ctx *Context) {
	if node.Kind() != cst.KindEmptyStmt {
		return
	}
	if parent := node.Parent; parent != nil {
		switch parent.Kind() {
		case cst.KindForStmt, cst.KindForInStmt, cst.KindWhileStmt,
			cst.KindDoWhileStmt, cst.KindIfStmt, cst.KindLabelledStmt,
			cst.KindWithStmt:
			return
		}
	}
	ctx.Diagnosef(node, "unnecessary semicolon").With(
		report.Helpf("delete this semicolon"),
	)
}
