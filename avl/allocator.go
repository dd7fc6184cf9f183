// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Node - a vertex of the tree
type Node struct {
	left  *Node // left sub-tree, all codes are lower
	right *Node // right sub-tree, all codes are higher
	code  Code
}

// global data for allocator, shared by all trees
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(code Code) *Node {
	m.Lock()
	defer m.Unlock()

	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		return &Node{
			code: code,
		}
	}
	p := pool
	pool = p.right
	p.code = code
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	return p
}

// reclaim a node that is no longer reachable and keep it in the pool
func freeNode(node *Node) {
	m.Lock()
	defer m.Unlock()

	node.left = nil
	node.code = 0
	node.right = pool // use as free list pointer
	freeNodes += 1

	pool = node
}

// PoolStatistics - total nodes ever created and the number
// currently waiting in the pool for reuse
func PoolStatistics() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
