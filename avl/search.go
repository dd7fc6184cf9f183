// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific code, nil if not in the tree
func (tree *Tree) Search(code Code) *Node {
	return tree.root.Search(code)
}

// Search - find a specific code in the sub-tree rooted at this node
func (p *Node) Search(code Code) *Node {
	if nil == p {
		return nil
	}

	switch {
	case code < p.code:
		return p.left.Search(code)
	case code > p.code:
		return p.right.Search(code)
	default:
		return p
	}
}
