// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - the append only history of holders for each item
//
// Packed record:
//
//   tag ⧺ has holder ⧺ [holder] ⧺ timestamp ⧺ reason
package custody
