// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the ledger data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction which stages them in a single
// LevelDB batch; reads made through the same Transaction see the
// staged values.  Commit writes the batch atomically, Abort discards it.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺            = concatenation of byte data
// 3. id           = item id as big endian uint64 (8 bytes)
// 4. n, pos       = big endian uint64 (8 bytes)
// 5. account      = key variant ⧺ ed25519 public key (33 bytes)
// 6. role         = single byte role code
// 7. *others*     = byte values of various length
//
// Ledger state:
//
//   Z ⧺ name                - named counters and flags
//                             next-id:   n
//                             paused:    00 | 01
//                             bootstrap: account
//
//   R ⧺ role ⧺ account      - role membership
//                             data: (empty)
//
// Catalog:
//
//   I ⧺ id                  - item record
//                             data: packed item
//   U ⧺ url                 - metadata url binding
//                             data: id
//
// Balances:
//
//   Q ⧺ account ⧺ id        - quantity held (deleted when it reaches zero)
//                             data: n
//   S ⧺ id                  - total minted and burned
//                             data: minted ⧺ burned
//
// Holding index:
//
//   N ⧺ account             - number of distinct items held
//                             data: n
//   L ⧺ account ⧺ pos       - list of held items, no gaps
//                             data: id
//   D ⧺ account ⧺ id        - position of an item in the list
//                             data: pos
//
// Custody history:
//
//   K ⧺ id                  - number of custody records
//                             data: n
//   H ⧺ id ⧺ n              - custody record
//                             data: packed record
package storage
