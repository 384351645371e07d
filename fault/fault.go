// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type BalanceError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RangeError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyBootstrapped      = StateError("ledger already has an administrator")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrCategoryTooLong          = InvalidError("category too long")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrContentHashLength        = InvalidError("content hash length is invalid")
	ErrCustodyRecordNotFound    = NotFoundError("custody record not found")
	ErrDuplicateMetadataURL     = ExistsError("metadata url is already bound to an item")
	ErrInsufficientBalance      = BalanceError("insufficient balance")
	ErrInvalidAmount            = InvalidError("amount must be greater than zero")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidHolder            = InvalidError("invalid holder")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidRange             = RangeError("invalid range")
	ErrInvalidRole              = InvalidError("invalid role")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrItemNotFound             = NotFoundError("item not found")
	ErrMetadataURLTooLong       = InvalidError("metadata url too long")
	ErrMetadataURLTooShort      = InvalidError("metadata url too short")
	ErrNameTooLong              = InvalidError("name too long")
	ErrNameTooShort             = InvalidError("name too short")
	ErrNotCustodyRecordPack     = InvalidError("not custody record pack")
	ErrNotItemPack              = InvalidError("not item pack")
	ErrNotPaused                = StateError("ledger is not paused")
	ErrNotPublicKey             = InvalidError("not public key")
	ErrOriginTooLong            = InvalidError("origin too long")
	ErrQuantityOverflow         = BalanceError("quantity overflow")
	ErrReasonTooLong            = InvalidError("reason too long")
	ErrReasonTooShort           = InvalidError("reason too short")
	ErrSerialNumberTooLong      = InvalidError("serial number too long")
	ErrSystemPaused             = StateError("ledger is paused")
	ErrTransactionAlreadyInUse  = ProcessError("transaction already in use")
	ErrTransactionNotInProgress = ProcessError("transaction not in progress")
	ErrTruncatedRecord          = InvalidError("truncated record")
	ErrUnauthorized             = PermissionError("caller lacks the required role")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e BalanceError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RangeError) Error() string      { return string(e) }
func (e StateError) Error() string      { return string(e) }

// determine the class of an error
func IsErrBalance(e error) bool    { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool      { _, ok := e.(RangeError); return ok }
func IsErrState(e error) bool      { _, ok := e.(StateError); return ok }
