// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/codetree/fault"
)

// Insert - add a new code to the tree
//
// an existing code returns fault.ErrCodeExists and the tree is left
// unchanged
func (tree *Tree) Insert(code Code) error {
	if nil == tree.root {
		tree.root = newNode(code)
		tree.count = 1
		tree.debugf("insert: %d as root", code)
		return nil
	}

	if err := tree.insert(code, tree.root); nil != err {
		tree.debugf("insert: %d  error: %s", code, err)
		return err
	}
	tree.count += 1
	tree.debugf("insert: %d  count: %d", code, tree.count)
	return nil
}

// internal routine for insert, p is never nil
func (tree *Tree) insert(code Code, p *Node) error {
	switch {
	case code < p.code:
		if nil == p.left {
			p.left = newNode(code)
		} else if err := tree.insert(code, p.left); nil != err {
			return err
		}
	case code > p.code:
		if nil == p.right {
			p.right = newNode(code)
		} else if err := tree.insert(code, p.right); nil != err {
			return err
		}
	default:
		return fault.ErrCodeExists
	}

	tree.rebalance(p)
	return nil
}
