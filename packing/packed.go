// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package packing

import (
	"github.com/bitmark-inc/itemledger/fault"
)

// maximum length of any single length-prefixed field
const maximumFieldLength = 8192

// Packed - a record packed as a sequence of Varint64 values and
// length-prefixed byte fields
type Packed []byte

// New - start a packed record with its tag
func New(tag uint64) Packed {
	return Packed(ToVarint64(tag))
}

// AppendUint64 - add a Varint64 value
func (p Packed) AppendUint64(value uint64) Packed {
	return append(p, ToVarint64(value)...)
}

// AppendBytes - add a count-prefixed byte field
func (p Packed) AppendBytes(data []byte) Packed {
	p = append(p, ToVarint64(uint64(len(data)))...)
	return append(p, data...)
}

// AppendString - add a count-prefixed string field
func (p Packed) AppendString(s string) Packed {
	return p.AppendBytes([]byte(s))
}

// AppendBool - add a single byte flag
func (p Packed) AppendBool(flag bool) Packed {
	if flag {
		return append(p, 1)
	}
	return append(p, 0)
}

// Unpacker - sequential reader over a packed record
//
// the first error is retained and all later reads return zero values
// so a record can be decoded completely before checking Err()
type Unpacker struct {
	record Packed
	n      int
	err    error
}

// NewUnpacker - read a packed record from the start
func (p Packed) NewUnpacker() *Unpacker {
	return &Unpacker{
		record: p,
	}
}

// Tag - read the leading record tag
func (u *Unpacker) Tag() uint64 {
	return u.Uint64()
}

// Uint64 - read a Varint64 value
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.record[u.n:])
	if 0 == count {
		u.err = fault.ErrTruncatedRecord
		return 0
	}
	u.n += count
	return value
}

// Bytes - read a count-prefixed byte field, the result is a copy
func (u *Unpacker) Bytes() []byte {
	if nil != u.err {
		return nil
	}
	length, count := FromVarint64(u.record[u.n:])
	if 0 == count || length > maximumFieldLength {
		u.err = fault.ErrTruncatedRecord
		return nil
	}
	u.n += count
	if uint64(len(u.record)-u.n) < length {
		u.err = fault.ErrTruncatedRecord
		return nil
	}
	data := make([]byte, length)
	copy(data, u.record[u.n:u.n+int(length)])
	u.n += int(length)
	return data
}

// String - read a count-prefixed string field
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Bool - read a single byte flag
func (u *Unpacker) Bool() bool {
	if nil != u.err {
		return false
	}
	if u.n >= len(u.record) {
		u.err = fault.ErrTruncatedRecord
		return false
	}
	b := u.record[u.n]
	u.n += 1
	return 0 != b
}

// Err - the first error encountered
func (u *Unpacker) Err() error {
	return u.err
}

// Done - true if the whole record was consumed without error
func (u *Unpacker) Done() bool {
	return nil == u.err && u.n == len(u.record)
}
