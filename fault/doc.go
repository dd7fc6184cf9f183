// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for the code tree
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Internal
// consistency failures do not return errors, they go through Panicf
// so that the last message reaches the log before the abort.
package fault
