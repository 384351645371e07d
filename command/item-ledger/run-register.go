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

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	registrant, err := checkIdentity(m.identity)
	if nil != err {
		return err
	}

	name, err := checkItemName(c.String("name"))
	if nil != err {
		return err
	}

	url, err := checkMetadataURL(c.String("url"))
	if nil != err {
		return err
	}

	hash, err := checkContentHash(c.String("hash"))
	if nil != err {
		return err
	}

	recipient, err := checkAccountOrIdentity(c.String("recipient"), m.identity)
	if nil != err {
		return err
	}

	details := &catalog.Details{
		Name:         name,
		Category:     c.String("category"),
		SerialNumber: c.String("serial"),
		Origin:       c.String("origin"),
		MetadataURL:  url,
		ContentHash:  hash,
	}
	quantity := c.Uint64("quantity")

	if m.verbose {
		fmt.Fprintf(m.e, "details: %+v\n", details)
		fmt.Fprintf(m.e, "recipient: %s  quantity: %d\n", recipient, quantity)
	}

	id, err := m.ledger.Register(registrant, recipient, details, quantity)
	if nil != err {
		return err
	}

	item, err := m.ledger.Item(id)
	if nil != err {
		return err
	}

	printJson(m.w, item)
	return nil
}
