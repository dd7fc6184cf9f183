// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avldump - debugging harness for the code tree
//
// builds a tree from the codes in the configuration file followed by
// the codes given as arguments, removes each --delete code, verifies
// the tree invariants and writes the dump to stdout
//
//   avldump --config-file=avldump.conf.lua --delete=25 10 30
package main
