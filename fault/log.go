// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// allow the final log message to be written before the panic
const panicDelay = 100 * time.Millisecond

// the logger channel for the last messages before an abort
var globalData struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for the last attempt to log
// something; the logger itself must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return ErrAlreadyInitialised
	}
	globalData.log = logger.New("PANIC")
	if nil == globalData.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		globalData.log.Flush()
		globalData.log = nil
	}
}

// Criticalf - log a formatted string prefixed by the caller position
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(2, format, arguments)...)
}

// Panicf - log a formatted message then panic
//
// used for internal consistency failures that must never be
// silently corrected
func Panicf(format string, arguments ...interface{}) {
	a := withCaller(2, format, arguments)
	internalCriticalf(a...)
	panicWith(fmt.Sprintf(a[0].(string), a[1:]...))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	panicWith(s)
}

// prepend "(file:line) " of the caller at depth skip to the format
func withCaller(skip int, format string, arguments []interface{}) []interface{} {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 3, 3+len(arguments))
		a[0] = "(%q:%d) " + format
		a[1] = file
		a[2] = line
		return append(a, arguments...)
	}
	a := make([]interface{}, 1, 1+len(arguments))
	a[0] = format
	return append(a, arguments...)
}

func panicWith(message string) {
	globalData.Lock()
	hasLog := nil != globalData.log
	globalData.Unlock()
	if hasLog {
		time.Sleep(panicDelay) // to allow logging output
	}
	panic(message)
}

// internal routine to handle an uninitialised logger channel
// the first argument is the format string
func internalCriticalf(a ...interface{}) {
	format := a[0].(string)
	arguments := a[1:]

	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	globalData.log.Criticalf(format, arguments...)
	globalData.log.Flush() // make sure log file is saved
}
