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

func runItem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id := c.Uint64("id")
	url := c.String("url")

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d  url: %q\n", id, url)
	}

	var item *catalog.Item
	var err error
	switch {
	case 0 != id:
		item, err = m.ledger.Item(id)
	case "" != url:
		item, err = m.ledger.LookupByURL(url)
	default:
		err = ErrRequiredIdOrURL
	}
	if nil != err {
		return err
	}

	printJson(m.w, item)
	return nil
}
