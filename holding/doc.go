// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package holding - per holder index of the item ids with a positive balance
//
// The list is array backed and has no gaps.  Removal moves the last
// entry into the vacated slot and updates its position record, so
// insertion order is not preserved.
package holding
