// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/itemledger/catalog"
)

type rangeReply struct {
	Start uint64         `json:"start"`
	End   uint64         `json:"end"`
	Items []catalog.Item `json:"items"`
}

func runRange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start, end, err := checkRange(c.Uint64("start"), c.Uint64("end"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "start: %d  end: %d\n", start, end)
	}

	items, valid, err := m.ledger.GetRange(start, end)
	if nil != err {
		return err
	}

	reply := rangeReply{
		Start: start,
		End:   end,
		Items: make([]catalog.Item, 0, len(items)),
	}
	for i, item := range items {
		if valid[i] {
			reply.Items = append(reply.Items, item)
		}
	}

	printJson(m.w, reply)
	return nil
}
