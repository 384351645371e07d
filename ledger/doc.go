// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the item provenance engine
//
// A Ledger ties together the catalog, balances, holding index and
// custody log of one store.  Every mutating call checks the caller's
// role and the pause flag, then applies all of its changes in a single
// storage transaction, so a failed call leaves no trace.
//
// Roles:
//
//   administrator  grant, revoke, pause, unpause, update metadata
//   manufacturer   register
//   customs        destroy
//   distributor    no gated operation
//   retailer       no gated operation
//
// Transfers are made by the current holder and need no role.
package ledger
