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

type destroyReply struct {
	Id        uint64           `json:"id"`
	Holder    *account.Account `json:"holder"`
	Remaining uint64           `json:"remaining"`
	Minted    uint64           `json:"minted"`
	Burned    uint64           `json:"burned"`
}

func runDestroy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m.identity)
	if nil != err {
		return err
	}

	id, err := checkItemId(c.Uint64("id"))
	if nil != err {
		return err
	}

	holder, err := checkAccount(c.String("holder"))
	if nil != err {
		return err
	}

	reason, err := checkReason(c.String("reason"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d  holder: %s  reason: %q\n", id, holder, reason)
	}

	err = m.ledger.Destroy(caller, id, holder, reason)
	if nil != err {
		return err
	}

	minted, burned := m.ledger.Supply(id)
	printJson(m.w, destroyReply{
		Id:        id,
		Holder:    holder,
		Remaining: m.ledger.BalanceOf(holder, id),
		Minted:    minted,
		Burned:    burned,
	})
	return nil
}
