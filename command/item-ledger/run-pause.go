// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type pauseReply struct {
	Paused bool `json:"paused"`
}

func runPause(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m.identity)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "pause by: %s\n", caller)
	}

	err = m.ledger.Pause(caller)
	if nil != err {
		return err
	}

	printJson(m.w, pauseReply{Paused: m.ledger.IsPaused()})
	return nil
}

func runUnpause(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m.identity)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "unpause by: %s\n", caller)
	}

	err = m.ledger.Unpause(caller)
	if nil != err {
		return err
	}

	printJson(m.w, pauseReply{Paused: m.ledger.IsPaused()})
	return nil
}
