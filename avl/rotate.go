// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotations restructure the node, a child and one grandchild sub-tree
// in place so that any parent link to p stays valid
//
//         p=A                  p=B
//        /   \                /   \
//       a     B      ==>     A'    c
//            / \            / \
//           b   c          a   b
//
// the child (B) is reclaimed after its code moves up and a new node
// (A') takes over the old code of p

// internal: right sub-tree is too deep
func (tree *Tree) rotateLeft(p *Node) {
	r := p.right

	n := newNode(p.code)
	n.left = p.left
	n.right = r.left

	tree.debugf("rotate left: %d ← %d", p.code, r.code)

	p.code = r.code
	p.left = n
	p.right = r.right

	freeNode(r)
}

// internal: left sub-tree is too deep, mirror of rotateLeft
func (tree *Tree) rotateRight(p *Node) {
	l := p.left

	n := newNode(p.code)
	n.right = p.right
	n.left = l.right

	tree.debugf("rotate right: %d → %d", l.code, p.code)

	p.code = l.code
	p.right = n
	p.left = l.left

	freeNode(l)
}
