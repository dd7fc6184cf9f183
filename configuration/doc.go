// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or YAML configuration file
//
// the format is chosen by the file extension.  For Lua, most of base
// Lua is available such as reading files to set key data and getenv
// to extract environment supplied items; the file must return a
// table.
package configuration
