// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package packing - binary layout for stored records
//
// A record is a Varint64 tag followed by its fields in order:
//   integers - Varint64
//   strings  - Varint64(length) ++ bytes
//   bytes    - Varint64(length) ++ bytes
//   flags    - single byte 00 or 01
package packing
