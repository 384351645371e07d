// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/itemledger/account"
)

type balanceReply struct {
	Id      uint64           `json:"id"`
	Holder  *account.Account `json:"holder"`
	Balance uint64           `json:"balance"`
	Minted  uint64           `json:"minted"`
	Burned  uint64           `json:"burned"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkItemId(c.Uint64("id"))
	if nil != err {
		return err
	}

	holder, err := checkAccountOrIdentity(c.String("holder"), m.identity)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d  holder: %s\n", id, holder)
	}

	minted, burned := m.ledger.Supply(id)
	printJson(m.w, balanceReply{
		Id:      id,
		Holder:  holder,
		Balance: m.ledger.BalanceOf(holder, id),
		Minted:  minted,
		Burned:  burned,
	})
	return nil
}
