// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer codes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Node handles returned by Search, First and Last are
//       only valid until the next Insert or Delete on the tree.
//
// Depth and balance are computed from the sub-trees on demand rather
// than being stored in the nodes.  Rotations are done in place: the
// node at the rotated position keeps its identity and takes over the
// key of the child that moves up, while a single new node takes over
// the old key.
//
// Codes are a set: inserting an existing code is rejected.
package avl
