// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m.identity)
	if nil != err {
		return err
	}

	id, err := checkItemId(c.Uint64("id"))
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

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d  url: %q  hash: %s\n", id, url, hash)
	}

	err = m.ledger.UpdateMetadata(caller, id, url, hash)
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
