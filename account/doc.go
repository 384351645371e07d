// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - holder and role-member identities
//
// An account is an ed25519 public key.  The stored form is a single
// key variant byte followed by the key so that every account has the
// same length and can be concatenated into storage keys.  The text
// form appends a four byte SHA3-256 checksum and is Base58 encoded.
package account
