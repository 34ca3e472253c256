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

import "github.com/driftlint/driftlint/cst"

// Node wraps a syntax tree node with the contextual links rules need: the
// parent, which the tree itself does not retain, and the materialized child
// list.
//
// The underlying tree is never mutated; a Node view is built fresh for each
// file checked.
type Node struct {
	cst.Syntax

	// Parent is nil at the root.
	Parent   *Node
	Children []*Node
}

// NewTree builds the parent-indexed view over root.
func NewTree(root cst.Syntax) *Node {
	node := &Node{Syntax: root}
	for _, child := range cst.Children(root) {
		wrapped := NewTree(child)
		wrapped.Parent = node
		node.Children = append(node.Children, wrapped)
	}
	return node
}

// Walk visits n and its descendants in pre-order.
func Walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		Walk(child, visit)
	}
}
