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

package cst

import "fmt"

// IsValidAssignTarget reports whether e may legally appear on the left of an
// assignment or update operator.
//
// The predicate is pure: it never mutates the tree and never emits
// diagnostics. Callers decide what a false return means — the parser pushes a
// recoverable diagnostic and keeps the node it built.
func IsValidAssignTarget(e Expr, strict bool) bool {
	switch e := e.(type) {
	case *Ident:
		// Strict mode reserves `eval` and `arguments` from assignment.
		return !strict || (e.Name != "eval" && e.Name != "arguments")
	case *Member:
		return true
	case *Grouping:
		// A parenthesized target is as good as the target itself.
		return IsValidAssignTarget(e.Inner, strict)
	case *Number, *String, *Regex, *Bool, *Null, *This,
		*Unary, *Update, *Binary, *Call, *Assign:
		return false
	default:
		panic(fmt.Sprintf("cst: unknown expression %T", e))
	}
}
