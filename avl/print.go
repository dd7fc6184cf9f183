// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// spaces per level for Dump
const dumpIndent = 4

// Dump - preorder listing of the tree, one line per node showing code,
// depth and balance factor, indented by level
func (tree *Tree) Dump() []string {
	return tree.root.Dump()
}

// Dump - preorder listing of the sub-tree rooted at this node
func (p *Node) Dump() []string {
	lines := []string{}
	dump(p, 0, &lines)
	return lines
}

func dump(p *Node, indent int, lines *[]string) {
	if nil == p {
		return
	}
	*lines = append(*lines, fmt.Sprintf("%s%d (depth: %d) (balance: %d)",
		strings.Repeat(" ", indent), p.code, p.Depth(), p.BalanceFactor()))
	dump(p.left, indent+dumpIndent, lines)
	dump(p.right, indent+dumpIndent, lines)
}

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree, with the
// root on the left and higher codes above, returns the depth
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d %+d\n", tree.code, tree.BalanceFactor())
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
