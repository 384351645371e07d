// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type bootstrapReply struct {
	Administrator string `json:"administrator"`
}

func runBootstrap(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("administrator")
	if "" == s {
		s = m.config.Administrator
	}
	if "" == s {
		return ErrRequiredAdministrator
	}
	admin, err := checkAccount(s)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "administrator: %s\n", admin)
	}

	err = m.ledger.Bootstrap(admin)
	if nil != err {
		return err
	}

	printJson(m.w, bootstrapReply{
		Administrator: admin.String(),
	})
	return nil
}
