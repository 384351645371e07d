// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog - item records, their packed storage form and the
// metadata url index
//
// Packed item:
//
//   tag ⧺ id ⧺ name ⧺ category ⧺ serial ⧺ timestamp ⧺ origin ⧺
//   content hash ⧺ metadata url ⧺ registrant ⧺ exists
//
// numbers are varints, strings and byte fields are count prefixed
package catalog
