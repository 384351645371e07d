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

type transferReply struct {
	Id       uint64           `json:"id"`
	From     *account.Account `json:"from"`
	To       *account.Account `json:"to"`
	Quantity uint64           `json:"quantity"`
	Balance  uint64           `json:"balance"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := checkIdentity(m.identity)
	if nil != err {
		return err
	}

	id, err := checkItemId(c.Uint64("id"))
	if nil != err {
		return err
	}

	to, err := checkAccount(c.String("receiver"))
	if nil != err {
		return err
	}

	quantity := c.Uint64("quantity")

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d  from: %s  to: %s  quantity: %d\n", id, from, to, quantity)
	}

	err = m.ledger.Transfer(from, to, id, quantity)
	if nil != err {
		return err
	}

	printJson(m.w, transferReply{
		Id:       id,
		From:     from,
		To:       to,
		Quantity: quantity,
		Balance:  m.ledger.BalanceOf(from, id),
	})
	return nil
}
