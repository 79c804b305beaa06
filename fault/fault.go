// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrCountMismatch        = RecordError("node count does not match tree count")
	ErrHeightCache          = RecordError("cached height does not match sub-tree height")
	ErrInvalidComparison    = InvalidError("keys of different types cannot be compared")
	ErrInvalidConfiguration = InvalidError("configuration file did not return a table")
	ErrInvalidKey           = InvalidError("key is not an integer")
	ErrInvalidKeyRange      = InvalidError("key range must be positive")
	ErrInvalidLogFile       = InvalidError("log file must be a plain file name")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidNodeCount     = InvalidError("number of random keys is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidStyle         = InvalidError("drawing style is not recognised")
	ErrNilKey               = InvalidError("key is nil")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundKey          = NotFoundError("key is not in the tree")
	ErrOrder                = RecordError("keys are out of order")
	ErrParentLink           = RecordError("parent link is inconsistent")
	ErrUnbalanced           = RecordError("sub-tree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
