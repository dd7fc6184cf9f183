// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/codetree/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	log   *logger.L // optional, nil for a silent tree
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// SetLog - attach a logger channel for debug traces and
// consistency reports
func (tree *Tree) SetLog(log *logger.L) error {
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	tree.log = log
	return nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Depth - the depth of the whole tree, zero if empty
func (tree *Tree) Depth() int {
	return tree.root.Depth()
}

// Code - read the code from a node
func (p *Node) Code() Code {
	return p.code
}

// Left - the left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right
}

// ChildrenAtLevel - returns all nodes that are a specific number
// of levels below a node, left to right
func (p *Node) ChildrenAtLevel(level uint) []*Node {
	nodes := []*Node{}

	if level == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.ChildrenAtLevel(level-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.ChildrenAtLevel(level-1)...)
		}
	}
	return nodes
}

// trace output only when a channel is attached
func (tree *Tree) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}

func (tree *Tree) warnf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Warnf(format, arguments...)
	}
}
