// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrCodeExists              = ExistsError("code already exists")
	ErrCodeNotFound            = NotFoundError("code not found")
	ErrCodeOutOfRange          = InvalidError("code is out of range")
	ErrConfigurationNotATable  = ProcessError("configuration did not return a table")
	ErrConfigurationNotFound   = NotFoundError("configuration file is not found")
	ErrInvalidCode             = InvalidError("code is not an integer")
	ErrInvalidDataDirectory    = InvalidError("data directory is invalid")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrNotPlainFileName        = InvalidError("file name must not contain a path")
	ErrTreeInconsistent        = ProcessError("tree is inconsistent")
	ErrUnsupportedConfigFormat = InvalidError("unsupported configuration file format")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
