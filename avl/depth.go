// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Depth - the height of the sub-tree rooted at this node, a leaf
// has depth 1 and an absent node 0
func (p *Node) Depth() int {
	if nil == p {
		return 0
	}
	ld := p.left.Depth()
	rd := p.right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// BalanceFactor - depth of left sub-tree minus depth of right sub-tree
//
// in a balanced tree this is -1, 0 or +1 at every node
func (p *Node) BalanceFactor() int {
	if nil == p {
		return 0
	}
	return p.left.Depth() - p.right.Depth()
}
