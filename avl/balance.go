// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/codetree/fault"
)

// internal: restore the balance of a node whose sub-trees were
// just changed by an insert or delete below it
//
// both sub-trees are already balanced, so the factor can only be off
// by one level; anything beyond ±2 means an earlier operation left
// the tree corrupt
func (tree *Tree) rebalance(p *Node) {
	switch bf := p.BalanceFactor(); bf {
	case -1, 0, +1:
		// balanced

	case -2: // right heavy
		if p.right.BalanceFactor() <= 0 {
			// single RR rotation
			tree.rotateLeft(p)
		} else {
			// double RL rotation
			tree.rotateRight(p.right)
			tree.rotateLeft(p)
		}

	case +2: // left heavy
		if p.left.BalanceFactor() >= 0 {
			// single LL rotation
			tree.rotateRight(p)
		} else {
			// double LR rotation
			tree.rotateLeft(p.left)
			tree.rotateRight(p)
		}

	default:
		fault.Panicf("avl: balance factor: %d out of range at code: %d", bf, p.code)
	}
}
