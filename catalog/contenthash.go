// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/hex"

	"github.com/bitmark-inc/itemledger/fault"
)

// limits
const (
	ContentHashLength = 32
)

// ContentHash - caller supplied digest of the item's metadata document
// represented as hex text for JSON encoding
// to get bytes value just use hash[:]
type ContentHash [ContentHashLength]byte

// String - convert a binary hash to hex string for use by the fmt package (for %s)
func (hash ContentHash) String() string {
	return hex.EncodeToString(hash[:])
}

// GoString - convert a binary hash to hex string for use by the fmt package (for %#v)
func (hash ContentHash) GoString() string {
	return "<content:" + hex.EncodeToString(hash[:]) + ">"
}

// MarshalText - convert hash to hex text
func (hash ContentHash) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(hash))
	buffer := make([]byte, size)
	hex.Encode(buffer, hash[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a hash
func (hash *ContentHash) UnmarshalText(s []byte) error {
	if len(hash) != hex.DecodedLen(len(s)) {
		return fault.ErrContentHashLength
	}
	byteCount, err := hex.Decode(hash[:], s)
	if nil != err {
		return err
	}
	if ContentHashLength != byteCount {
		return fault.ErrContentHashLength
	}
	return nil
}

// ContentHashFromBytes - convert and validate a binary byte slice to a hash
func ContentHashFromBytes(hash *ContentHash, buffer []byte) error {
	if ContentHashLength != len(buffer) {
		return fault.ErrContentHashLength
	}
	copy(hash[:], buffer)
	return nil
}
