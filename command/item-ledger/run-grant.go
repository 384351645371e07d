// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/ledger"
)

type roleReply struct {
	Account *account.Account `json:"account"`
	Roles   []ledger.Role    `json:"roles"`
}

func runGrant(c *cli.Context) error {
	return changeRole(c, "grant")
}

func runRevoke(c *cli.Context) error {
	return changeRole(c, "revoke")
}

// common code for grant and revoke
func changeRole(c *cli.Context, action string) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m.identity)
	if nil != err {
		return err
	}

	role, err := checkRole(c.String("role"))
	if nil != err {
		return err
	}

	target, err := checkAccount(c.String("account"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s: %s  account: %s\n", action, role, target)
	}

	if "grant" == action {
		err = m.ledger.Grant(caller, role, target)
	} else {
		err = m.ledger.Revoke(caller, role, target)
	}
	if nil != err {
		return err
	}

	printJson(m.w, roleReply{
		Account: target,
		Roles:   m.ledger.RolesOf(target),
	})
	return nil
}
