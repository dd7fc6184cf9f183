// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/codetree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		dir      string
		path     string
		expected string
	}{
		{"/data", "log", "/data/log"},
		{"/data", "./log/../logs", "/data/logs"},
		{"/data", "/var/log", "/var/log"},
		{"/data/", "/var//log/", "/var/log"},
	}
	for _, item := range items {
		assert.Equal(t, item.expected, util.EnsureAbsolute(item.dir, item.path), "dir: %q  path: %q", item.dir, item.path)
	}
}

func TestIsPlainFileName(t *testing.T) {
	assert.True(t, util.IsPlainFileName("avldump.log"), "plain")
	assert.False(t, util.IsPlainFileName(""), "empty")
	assert.False(t, util.IsPlainFileName("log/avldump.log"), "relative path")
	assert.False(t, util.IsPlainFileName("/tmp/avldump.log"), "absolute path")
	assert.False(t, util.IsPlainFileName("./avldump.log"), "dot path")
}
