// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/catalog"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/ledger"
)

// largest number of ids the range command will print
const maximumRangeCount = 1000

var (
	ErrRangeTooLarge         = fault.InvalidError("range spans too many ids")
	ErrRequiredAccount       = fault.InvalidError("account is required")
	ErrRequiredAdministrator = fault.InvalidError("administrator is required")
	ErrRequiredConfigFile    = fault.InvalidError("config file is required")
	ErrRequiredEnd           = fault.InvalidError("end id is required")
	ErrRequiredIdentity      = fault.InvalidError("identity is required")
	ErrRequiredIdOrURL       = fault.InvalidError("one of item id or url is required")
	ErrRequiredItemId        = fault.InvalidError("item id is required")
	ErrRequiredItemName      = fault.InvalidError("item name is required")
	ErrRequiredMetadataURL   = fault.InvalidError("metadata url is required")
	ErrRequiredReason        = fault.InvalidError("reason is required")
	ErrRequiredRole          = fault.InvalidError("role is required")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// the calling account from --identity or the configuration
func checkIdentity(identity string) (*account.Account, error) {
	if "" == identity {
		return nil, ErrRequiredIdentity
	}
	return account.FromBase58(identity)
}

// a required account argument
func checkAccount(s string) (*account.Account, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrRequiredAccount
	}
	return account.FromBase58(s)
}

// an optional account argument that falls back to the caller
func checkAccountOrIdentity(s string, identity string) (*account.Account, error) {
	if "" == strings.TrimSpace(s) {
		return checkIdentity(identity)
	}
	return checkAccount(s)
}

func checkRole(s string) (ledger.Role, error) {
	if "" == s {
		return 0, ErrRequiredRole
	}
	return ledger.RoleFromString(s)
}

func checkItemId(id uint64) (uint64, error) {
	if 0 == id {
		return 0, ErrRequiredItemId
	}
	return id, nil
}

func checkItemName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredItemName
	}
	return name, nil
}

func checkMetadataURL(url string) (string, error) {
	if "" == url {
		return "", ErrRequiredMetadataURL
	}
	return url, nil
}

// blank gives the zero hash
func checkContentHash(s string) (catalog.ContentHash, error) {
	var hash catalog.ContentHash
	if "" == s {
		return hash, nil
	}
	err := hash.UnmarshalText([]byte(s))
	return hash, err
}

func checkReason(reason string) (string, error) {
	if "" == reason {
		return "", ErrRequiredReason
	}
	return reason, nil
}

// end is required, the ledger itself reports an end before the start
func checkRange(start uint64, end uint64) (uint64, uint64, error) {
	if 0 == end {
		return 0, 0, ErrRequiredEnd
	}
	if end >= start && end-start >= maximumRangeCount {
		return 0, 0, ErrRangeTooLarge
	}
	return start, end, nil
}
