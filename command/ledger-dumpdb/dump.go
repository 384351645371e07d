// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/itemledger/storage"
)

const bytesPerLine = 32

// print a page of elements numbered from n, returns the next number
func printElements(w io.Writer, n int, data []storage.Element, ascii bool) int {
	for _, e := range data {
		fmt.Fprintf(w, "%d: Key: %x\n", n, e.Key)
		if ascii {
			hexDump(w, fmt.Sprintf("%d: Val: ", n), e.Value)
		} else {
			fmt.Fprintf(w, "%d: Val: %x\n", n, e.Value)
		}
		n += 1
	}
	return n
}

// hex and printable characters, bytesPerLine to a line
func hexDump(w io.Writer, prefix string, data []byte) {
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "%s%04x  ", prefix, i)
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}

		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(w, " |%s|\n", printable(data[i:end]))
	}
}

// replace control and non-ASCII bytes by '.'
func printable(data []byte) string {
	buffer := make([]byte, len(data))
	for i, c := range data {
		if c < 32 || c >= 127 {
			c = '.'
		}
		buffer[i] = c
	}
	return string(buffer)
}

// first key after every key starting with prefix, nil if there is none
func prefixLimit(prefix []byte) []byte {
	limit := append([]byte{}, prefix...)
	for i := len(limit) - 1; i >= 0; i -= 1 {
		if 0xff != limit[i] {
			limit[i] += 1
			return limit[:i+1]
		}
	}
	return nil
}
