// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/codetree/fault"
)

// Check - run all consistency checks
func (tree *Tree) Check() error {
	if !tree.CheckOrder() || !tree.CheckBalance() || !tree.CheckCount() {
		return fault.ErrTreeInconsistent
	}
	return nil
}

// CheckOrder - every code in a left sub-tree is lower and every code in
// a right sub-tree is higher than the code of the node
func (tree *Tree) CheckOrder() bool {
	return tree.checkOrder(tree.root, nil, nil)
}

// internal: consistency checker, low and high are the exclusive
// bounds inherited from the ancestors, nil if unbounded
func (tree *Tree) checkOrder(p *Node, low *Code, high *Code) bool {
	if nil == p {
		return true
	}
	if nil != low && p.code <= *low {
		tree.warnf("order fail at node: %d  not above: %d", p.code, *low)
		return false
	}
	if nil != high && p.code >= *high {
		tree.warnf("order fail at node: %d  not below: %d", p.code, *high)
		return false
	}
	if !tree.checkOrder(p.left, low, &p.code) {
		return false
	}
	return tree.checkOrder(p.right, &p.code, high)
}

// CheckBalance - balance factor of every node is -1, 0 or +1
func (tree *Tree) CheckBalance() bool {
	_, ok := tree.checkBalance(tree.root)
	return ok
}

// internal: returns the depth so each sub-tree is only measured once
func (tree *Tree) checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	ld, ok := tree.checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rd, ok := tree.checkBalance(p.right)
	if !ok {
		return 0, false
	}
	bf := ld - rd
	if bf < -1 || bf > 1 {
		tree.warnf("balance fail at node: %d  balance: %+d", p.code, bf)
		return 0, false
	}
	if ld > rd {
		return 1 + ld, true
	}
	return 1 + rd, true
}

// CheckCount - the number of reachable nodes matches Count
func (tree *Tree) CheckCount() bool {
	n := 0
	tree.Walk(func(*Node) bool {
		n += 1
		return true
	})
	if n != tree.count {
		tree.warnf("count fail: nodes: %d  expected: %d", n, tree.count)
		return false
	}
	return true
}
