// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/codetree/fault"
)

// Code - the key type of the tree
type Code int64

// String - decimal representation of a code
func (c Code) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// ParseCode - convert external text to a code
//
// this is the boundary check for callers that receive codes as text;
// anything that is not a base 10 integer in the range of a Code is
// rejected before it can reach a tree
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, fault.ErrInvalidCode
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		if ne, ok := err.(*strconv.NumError); ok && strconv.ErrRange == ne.Err {
			return 0, fault.ErrCodeOutOfRange
		}
		return 0, fault.ErrInvalidCode
	}
	return Code(n), nil
}
