// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/itemledger/custody"
)

type provenanceReply struct {
	Id      uint64           `json:"id"`
	Records []custody.Record `json:"records"`
}

func runProvenance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkItemId(c.Uint64("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	records, err := m.ledger.History(id)
	if nil != err {
		return err
	}

	printJson(m.w, provenanceReply{
		Id:      id,
		Records: records,
	})
	return nil
}
