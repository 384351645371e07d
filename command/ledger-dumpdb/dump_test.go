// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/itemledger/storage"
)

func TestPrintElements(t *testing.T) {
	data := []storage.Element{
		{Key: []byte{0x00, 0x01}, Value: []byte{0xab}},
		{Key: []byte{0x00, 0x02}, Value: []byte{}},
	}

	buffer := &bytes.Buffer{}
	n := printElements(buffer, 5, data, false)
	assert.Equal(t, 7, n, "next number")
	assert.Equal(t, "5: Key: 0001\n5: Val: ab\n6: Key: 0002\n6: Val: \n", buffer.String(), "output")
}

func TestHexDump(t *testing.T) {
	data := []byte("item\x00ledger")

	buffer := &bytes.Buffer{}
	hexDump(buffer, "> ", data)

	expected := "> 0000  69 74 65 6d 00 6c 65 64 67 65 72 " +
		strings.Repeat("   ", 5) + " " + strings.Repeat("   ", 16) +
		" |item.ledger|\n"
	assert.Equal(t, expected, buffer.String(), "single line")
}

func TestHexDumpLines(t *testing.T) {
	data := bytes.Repeat([]byte{'x'}, bytesPerLine+1)

	buffer := &bytes.Buffer{}
	hexDump(buffer, "", data)

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	assert.Equal(t, 2, len(lines), "line count")
	assert.True(t, strings.HasPrefix(lines[0], "0000  78 "), "first address")
	assert.True(t, strings.HasSuffix(lines[0], "|"+strings.Repeat("x", bytesPerLine)+"|"), "first ascii")
	assert.True(t, strings.HasPrefix(lines[1], "0020  78 "), "second address")
	assert.True(t, strings.HasSuffix(lines[1], " |x|"), "second ascii")
}

func TestPrefixLimit(t *testing.T) {
	tests := []struct {
		prefix []byte
		limit  []byte
	}{
		{[]byte{0x01}, []byte{0x02}},
		{[]byte{0x01, 0xff}, []byte{0x02}},
		{[]byte{0x00, 0x10, 0xff, 0xff}, []byte{0x00, 0x11}},
		{[]byte{0xff, 0xff}, nil},
	}

	for i, item := range tests {
		assert.Equal(t, item.limit, prefixLimit(item.prefix), "%d: limit", i)
	}
}
