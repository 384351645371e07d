// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package packing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/packing"
)

func TestPackedFields(t *testing.T) {
	p := packing.New(7).
		AppendString("tractor").
		AppendUint64(1571270400).
		AppendBytes([]byte{1, 2, 3}).
		AppendBool(true).
		AppendString("")

	u := p.NewUnpacker()
	assert.Equal(t, uint64(7), u.Tag(), "wrong tag")
	assert.Equal(t, "tractor", u.String(), "wrong string")
	assert.Equal(t, uint64(1571270400), u.Uint64(), "wrong integer")
	assert.Equal(t, []byte{1, 2, 3}, u.Bytes(), "wrong bytes")
	assert.True(t, u.Bool(), "wrong flag")
	assert.Equal(t, "", u.String(), "wrong empty string")
	assert.Nil(t, u.Err(), "unexpected error")
	assert.True(t, u.Done(), "record not consumed")
}

func TestPackedTruncated(t *testing.T) {
	p := packing.New(1).AppendString("serial-number")

	for n := 1; n < len(p); n += 1 {
		u := p[:n].NewUnpacker()
		u.Tag()
		s := u.String()
		assert.Equal(t, "", s, "%d: expected empty string from truncated record", n)
		assert.Equal(t, fault.ErrTruncatedRecord, u.Err(), "%d: wrong error", n)
		assert.False(t, u.Done(), "%d: truncated record reported done", n)
	}
}

func TestPackedErrorIsSticky(t *testing.T) {
	u := packing.Packed{}.NewUnpacker()
	assert.Equal(t, uint64(0), u.Tag(), "wrong tag")
	assert.False(t, u.Bool(), "wrong flag")
	assert.Nil(t, u.Bytes(), "wrong bytes")
	assert.Equal(t, fault.ErrTruncatedRecord, u.Err(), "wrong error")
}

func TestPackedTrailingData(t *testing.T) {
	p := append(packing.New(2).AppendUint64(99), 0x00)
	u := p.NewUnpacker()
	u.Tag()
	u.Uint64()
	assert.Nil(t, u.Err(), "unexpected error")
	assert.False(t, u.Done(), "trailing byte not detected")
}
