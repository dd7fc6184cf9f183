// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/codetree/fault"
)

// Delete - removes a specific code from the tree
//
// returns true if the code was found and removed, deleting an absent
// code does not change the tree
func (tree *Tree) Delete(code Code) bool {
	removed := tree.delete(code, &tree.root)
	if removed {
		tree.count -= 1
		tree.debugf("delete: %d  count: %d", code, tree.count)
	} else {
		tree.debugf("delete: %d  not found", code)
	}
	return removed
}

// internal delete routine
//
// pp is the link that holds the sub-tree so that a leaf can be spliced
// out of its parent directly
func (tree *Tree) delete(code Code, pp **Node) bool {
	p := *pp
	if nil == p { // code not in tree
		return false
	}

	switch {
	case code < p.code:
		if !tree.delete(code, &p.left) {
			return false
		}

	case code > p.code:
		if !tree.delete(code, &p.right) {
			return false
		}

	default: // found: delete p
		switch {
		case nil == p.left && nil == p.right:
			*pp = nil
			freeNode(p)
			return true // nothing left to balance here

		case nil == p.left || nil == p.right:
			// promote the only child into this node
			c := p.left
			if nil == c {
				c = p.right
			}
			p.code = c.code
			p.left = c.left
			p.right = c.right
			freeNode(c)

		default:
			// take the in-order successor's code then remove the
			// successor, which has at most a right child
			s := p.right.first()
			p.code = s.code
			if !tree.delete(s.code, &p.right) {
				fault.Panicf("avl: successor: %d missing below code: %d", s.code, code)
			}
		}
	}

	tree.rebalance(p)
	return true
}
