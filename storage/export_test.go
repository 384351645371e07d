// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// exported for the external test package
var (
	NewDA    = newDA
	NewCache = func() Cache { return newCache() }
)
