// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nodes not in the pool are either live in some tree or garbage from
// earlier tests; rotations take one and return one, so a tree of n
// codes holds exactly n more
func TestPoolReuse(t *testing.T) {
	total, free := PoolStatistics()
	used := total - free

	tree := New()
	for code := Code(1); code <= 100; code += 1 {
		require.NoError(t, tree.Insert(code))
	}
	total, free = PoolStatistics()
	assert.Equal(t, used+100, total-free, "nodes in use after insert")

	for code := Code(1); code <= 100; code += 1 {
		require.True(t, tree.Delete(code))
	}
	total, free = PoolStatistics()
	assert.Equal(t, used, total-free, "nodes in use after delete")
	assert.True(t, free >= 100, "free: %d", free)

	// rebuilding must draw from the pool, not allocate
	for code := Code(1); code <= 50; code += 1 {
		require.NoError(t, tree.Insert(code))
	}
	total2, _ := PoolStatistics()
	assert.Equal(t, total, total2, "new nodes allocated with a full pool")
}

func TestRotateInPlace(t *testing.T) {
	// 10 with right chain 20 → 30
	p := &Node{code: 10, right: &Node{code: 20, left: &Node{code: 15}, right: &Node{code: 30}}}
	p.left = &Node{code: 5}
	tree := &Tree{root: p, count: 5}

	tree.rotateLeft(p)

	assert.Equal(t, Code(20), p.code, "new root code")
	require.NotNil(t, p.left, "left")
	assert.Equal(t, Code(10), p.left.code, "old root moved left")
	assert.Equal(t, Code(5), p.left.left.code, "old left kept")
	assert.Equal(t, Code(15), p.left.right.code, "inner grandchild moved")
	assert.Equal(t, Code(30), p.right.code, "outer grandchild kept")
	assert.True(t, tree.CheckOrder(), "order after rotate left")

	tree.rotateRight(p)

	assert.Equal(t, Code(10), p.code, "root code restored")
	assert.Equal(t, Code(5), p.left.code, "left restored")
	assert.Equal(t, Code(20), p.right.code, "right restored")
	assert.Equal(t, Code(15), p.right.left.code, "inner grandchild restored")
	assert.Equal(t, Code(30), p.right.right.code, "outer grandchild restored")
	assert.True(t, tree.CheckOrder(), "order after rotate right")
}

// a factor beyond ±2 can only come from corruption
func TestRebalanceOutOfRange(t *testing.T) {
	p := &Node{code: 4, left: &Node{code: 3, left: &Node{code: 2, left: &Node{code: 1}}}}
	tree := &Tree{root: p, count: 4}

	assert.Equal(t, 3, p.BalanceFactor(), "setup")
	assert.Panics(t, func() {
		tree.rebalance(p)
	}, "corrupt tree was rebalanced")
}

// the successor of a two child node must be reachable from its right
// sub-tree, 70 is misplaced to the left of 60 so it cannot be found
func TestDeleteMissingSuccessor(t *testing.T) {
	p := &Node{code: 50, left: &Node{code: 40}, right: &Node{code: 60, left: &Node{code: 70}}}
	tree := &Tree{root: p, count: 4}

	assert.Panics(t, func() {
		tree.Delete(50)
	}, "delete with an unreachable successor did not panic")
}

func TestChecksDetectCorruption(t *testing.T) {
	// order: 25 is in the left sub-tree of 20
	bad := &Node{code: 20, left: &Node{code: 10, right: &Node{code: 25}}, right: &Node{code: 30}}
	tree := &Tree{root: bad, count: 4}
	assert.False(t, tree.CheckOrder(), "order violation not detected")
	assert.True(t, tree.CheckBalance(), "balance")
	assert.True(t, tree.CheckCount(), "count")
	assert.Error(t, tree.Check(), "check")

	// balance: chain of three
	chain := &Node{code: 1, right: &Node{code: 2, right: &Node{code: 3}}}
	tree = &Tree{root: chain, count: 3}
	assert.True(t, tree.CheckOrder(), "order")
	assert.False(t, tree.CheckBalance(), "balance violation not detected")

	// count
	tree = &Tree{root: &Node{code: 1}, count: 2}
	assert.False(t, tree.CheckCount(), "count mismatch not detected")
}
