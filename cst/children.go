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

// Children returns n's direct child nodes in source order. Leaves return nil.
//
// Every node kind is handled here; traversal order over Children is what
// recovers tree structure, since children do not retain parent pointers.
func Children(n Syntax) []Syntax {
	switch n := n.(type) {
	case *Ident, *Number, *String, *Regex, *Bool, *Null, *This, *EmptyStmt:
		return nil
	case *Unary:
		return []Syntax{n.Operand}
	case *Update:
		return []Syntax{n.Operand}
	case *Grouping:
		return []Syntax{n.Inner}
	case *Binary:
		return []Syntax{n.Left, n.Right}
	case *Member:
		return []Syntax{n.Object, n.Prop}
	case *Call:
		children := []Syntax{n.Callee}
		for _, arg := range n.Args {
			children = append(children, arg)
		}
		return children
	case *Assign:
		return []Syntax{n.Target, n.Value}
	case *ExprStmt:
		return []Syntax{n.Expr}
	case *BlockStmt:
		children := make([]Syntax, len(n.Stmts))
		for i, stmt := range n.Stmts {
			children[i] = stmt
		}
		return children
	case *IfStmt:
		children := []Syntax{n.Cond, n.Body}
		if n.ElseBody != nil {
			children = append(children, n.ElseBody)
		}
		return children
	case *WhileStmt:
		return []Syntax{n.Cond, n.Body}
	case *DoWhileStmt:
		return []Syntax{n.Body, n.Cond}
	case *ForStmt:
		var children []Syntax
		for _, e := range []Expr{n.Init, n.Test, n.Update} {
			if e != nil {
				children = append(children, e)
			}
		}
		return append(children, n.Body)
	case *ForInStmt:
		return []Syntax{n.Left, n.Right, n.Body}
	case *LabelledStmt:
		return []Syntax{n.Label, n.Body}
	case *WithStmt:
		return []Syntax{n.Object, n.Body}
	case *Script:
		children := make([]Syntax, len(n.Stmts))
		for i, stmt := range n.Stmts {
			children[i] = stmt
		}
		return children
	default:
		panic(fmt.Sprintf("cst: unknown node %T", n))
	}
}
