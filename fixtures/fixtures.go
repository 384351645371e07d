// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/itemledger/account"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known test accounts
var (
	Admin        *account.Account
	Manufacturer *account.Account
	Distributor  *account.Account
	Customs      *account.Account
	Customer1    *account.Account
	Customer2    *account.Account
)

func init() {
	Admin = NewAccount(1)
	Manufacturer = NewAccount(2)
	Distributor = NewAccount(3)
	Customs = NewAccount(4)
	Customer1 = NewAccount(5)
	Customer2 = NewAccount(6)
}

// NewAccount - deterministic test account derived from a small seed value
func NewAccount(n byte) *account.Account {
	seed := make([]byte, ed25519.SeedSize)
	seed[0] = n
	seed[ed25519.SeedSize-1] = ^n
	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := privateKey.Public().(ed25519.PublicKey)
	a, err := account.FromPublicKey(publicKey, true)
	if nil != err {
		panic(err)
	}
	return a
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
