// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/catalog"
)

type holdingEntry struct {
	Item     catalog.Item `json:"item"`
	Quantity uint64       `json:"quantity"`
}

type holdingsReply struct {
	Holder *account.Account `json:"holder"`
	Total  uint64           `json:"total"`
	Start  uint64           `json:"start"`
	Items  []holdingEntry   `json:"items"`
}

func runHoldings(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := checkAccountOrIdentity(c.String("holder"), m.identity)
	if nil != err {
		return err
	}

	start := c.Uint64("start")
	count := c.Uint64("count")
	all := c.Bool("all")

	if m.verbose {
		fmt.Fprintf(m.e, "holder: %s  start: %d  count: %d  all: %t\n", holder, start, count, all)
	}

	var items []catalog.Item
	var quantities []uint64
	if all {
		start = 0
		items, quantities = m.ledger.GetAllHoldings(holder)
	} else {
		items, quantities, err = m.ledger.GetHoldingsPage(holder, start, count)
		if nil != err {
			return err
		}
	}

	reply := holdingsReply{
		Holder: holder,
		Total:  m.ledger.GetHoldingsCount(holder),
		Start:  start,
		Items:  make([]holdingEntry, len(items)),
	}
	for i := range items {
		reply.Items[i] = holdingEntry{
			Item:     items[i],
			Quantity: quantities[i],
		}
	}

	printJson(m.w, reply)
	return nil
}
