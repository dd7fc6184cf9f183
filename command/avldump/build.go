// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/codetree/avl"
	"github.com/bitmark-inc/codetree/fault"
)

// build the tree then apply deletions
//
// duplicates and absent deletions are only logged, a tree that
// fails the consistency checks is an error
func buildTree(inserts []avl.Code, deletes []avl.Code, log *logger.L) (*avl.Tree, error) {
	tree := avl.New()
	if err := tree.SetLog(log); nil != err {
		return nil, err
	}

	for _, code := range inserts {
		if err := tree.Insert(code); nil != err {
			if !fault.IsErrExists(err) {
				return nil, err
			}
			log.Warnf("insert: %d  error: %s", code, err)
		}
	}

	for _, code := range deletes {
		if !tree.Delete(code) {
			log.Warnf("delete: %d  error: %s", code, fault.ErrCodeNotFound)
		}
	}

	if err := tree.Check(); nil != err {
		return nil, err
	}
	return tree, nil
}

// write the dump lines or the graphic to w
func render(w io.Writer, tree *avl.Tree, graph bool) {
	if graph {
		tree.Print(w)
		return
	}
	for _, line := range tree.Dump() {
		fmt.Fprintln(w, line)
	}
}

// summary for --verbose
func summary(w io.Writer, tree *avl.Tree) {
	total, free := avl.PoolStatistics()
	fmt.Fprintf(w, "count: %d  depth: %d  nodes created: %d  pooled: %d\n", tree.Count(), tree.Depth(), total, free)
}
