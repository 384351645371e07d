// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/ledger"
)

type infoReply struct {
	Version  string           `json:"version"`
	Database string           `json:"database"`
	Ledger   *ledger.Info     `json:"ledger"`
	Identity *account.Account `json:"identity,omitempty"`
	Roles    []ledger.Role    `json:"roles,omitempty"`
	Holdings uint64           `json:"holdings"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	reply := infoReply{
		Version:  version,
		Database: m.config.Database.Name,
		Ledger:   m.ledger.GetInfo(),
	}

	// identity is optional here
	if "" != m.identity {
		caller, err := checkIdentity(m.identity)
		if nil != err {
			return err
		}
		reply.Identity = caller
		reply.Roles = m.ledger.RolesOf(caller)
		reply.Holdings = m.ledger.GetHoldingsCount(caller)
	}

	printJson(m.w, reply)
	return nil
}
