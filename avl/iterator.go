// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest code
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest code
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Walk - visit every node in ascending code order until the visitor
// returns false; returns false if the walk was stopped early
//
// the visitor must not modify the tree
func (tree *Tree) Walk(visit func(*Node) bool) bool {
	return walk(tree.root, visit)
}

func walk(p *Node, visit func(*Node) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, visit) && visit(p) && walk(p.right, visit)
}

// Keys - all codes of the tree in ascending order
func (tree *Tree) Keys() []Code {
	keys := make([]Code, 0, tree.count)
	tree.Walk(func(p *Node) bool {
		keys = append(keys, p.code)
		return true
	})
	return keys
}
