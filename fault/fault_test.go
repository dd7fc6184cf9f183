// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/codetree/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{fault.ErrCodeExists, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{fault.ErrInvalidCode, false, true, false, false},
		{fault.ErrCodeOutOfRange, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{fault.ErrCodeNotFound, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{fault.ErrTreeInconsistent, false, false, false, true},
		{fault.GenericError("generic"), false, false, false, false},
		{errors.New("plain"), false, false, false, false},
		{fmt.Errorf("code: %q  error: %w", "x", fault.ErrInvalidCode), false, true, false, false},
		{fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", fault.ErrCodeNotFound)), false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// without an initialised channel the message goes to stdout and the
// panic value carries the caller position
func TestPanicf(t *testing.T) {
	defer func() {
		r := recover()
		if assert.NotNil(t, r, "Panicf did not panic") {
			s, ok := r.(string)
			assert.True(t, ok, "panic value is not a string")
			assert.Contains(t, s, "fault_test.go")
			assert.Contains(t, s, "balance factor: 3")
		}
	}()
	fault.Panicf("balance factor: %d", 3)
}

// Criticalf only logs
func TestCriticalf(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.Criticalf("tree: %s", "inconsistent")
	})
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.PanicIfError("no error", nil)
	})
	assert.Panics(t, func() {
		fault.PanicIfError("check", fault.ErrTreeInconsistent)
	})
}
