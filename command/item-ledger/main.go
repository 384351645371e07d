// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/itemledger/configuration"
	"github.com/bitmark-inc/itemledger/ledger"
	"github.com/bitmark-inc/itemledger/storage"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	file     string
	config   *configuration.Configuration
	store    *storage.Store
	ledger   *ledger.Ledger
	identity string
	verbose  bool
	log      *logger.L
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that run without a configuration file or database
var standalone = map[string]bool{
	"":         true,
	"help":     true,
	"h":        true,
	"version":  true,
	"generate": true,
}

func main() {

	app := cli.NewApp()
	app.Name = "item-ledger"
	app.Usage = "record items and their custody"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "config, c",
			Value:  "item-ledger.conf",
			Usage:  " configuration `FILE`",
			EnvVar: "ITEM_LEDGER_CONFIG",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " caller `ACCOUNT` [default: identity from configuration]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair and its account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "test, t",
					Usage: " make a test network account",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "bootstrap",
			Usage:     "install the first administrator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "administrator, a",
					Value: "",
					Usage: " administrator `ACCOUNT` [default: from configuration]",
				},
			},
			Action: runBootstrap,
		},
		{
			Name:      "grant",
			Usage:     "grant a role to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Value: "",
					Usage: "*role `NAME` [administrator|manufacturer|distributor|retailer|customs]",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*grantee `ACCOUNT`",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "revoke a role from an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Value: "",
					Usage: "*role `NAME` [administrator|manufacturer|distributor|retailer|customs]",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*account to revoke `ACCOUNT`",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "pause",
			Usage:     "stop all item mutations",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runPause,
		},
		{
			Name:      "unpause",
			Usage:     "resume item mutations",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runUnpause,
		},
		{
			Name:      "register",
			Usage:     "register a new item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*item name `STRING`",
				},
				cli.StringFlag{
					Name:  "category, k",
					Value: "",
					Usage: " item category `STRING`",
				},
				cli.StringFlag{
					Name:  "serial, s",
					Value: "",
					Usage: " serial number `STRING`",
				},
				cli.StringFlag{
					Name:  "origin, o",
					Value: "",
					Usage: " place of origin `STRING`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "*metadata `URL`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: " content hash `HEX` [64 hex digits]",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: " initial holder `ACCOUNT` [default: caller]",
				},
				cli.Uint64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " number of units `COUNT`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "update",
			Usage:     "change the metadata of an item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "*new metadata `URL`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: " new content hash `HEX` [64 hex digits]",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "destroy",
			Usage:     "destroy one unit of an item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: "*current holder `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "reason, r",
					Value: "",
					Usage: "*reason for destruction `STRING`",
				},
			},
			Action: runDestroy,
		},
		{
			Name:      "transfer",
			Usage:     "transfer units of an item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*new holder `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " number of units `COUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "item",
			Usage:     "show an item by id or metadata url",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "+item `ID`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "+metadata `URL`",
				},
			},
			Action: runItem,
		},
		{
			Name:      "range",
			Usage:     "list items in an id range",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first item `ID`",
				},
				cli.Uint64Flag{
					Name:  "end, e",
					Value: 0,
					Usage: "*last item `ID`",
				},
			},
			Action: runRange,
		},
		{
			Name:      "holdings",
			Usage:     "list the items held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: " holder `ACCOUNT` [default: caller]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " index position to start `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
				cli.BoolFlag{
					Name:  "all, a",
					Usage: " list every holding",
				},
			},
			Action: runHoldings,
		},
		{
			Name:      "provenance",
			Usage:     "list the custody history of an item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
			},
			Action: runProvenance,
		},
		{
			Name:      "balance",
			Usage:     "units of an item held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: " holder `ACCOUNT` [default: caller]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "info",
			Usage:     "display ledger state and the roles of the caller",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display item-ledger version",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			identity: c.GlobalString("identity"),
			verbose:  verbose,
			e:        e,
			w:        w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file for certain commands
		command := c.Args().Get(0)
		if standalone[command] {
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}
		m.file = file

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		m.config, err = configuration.Get(file)
		if nil != err {
			return err
		}

		if "" == m.identity {
			m.identity = m.config.Identity
		}

		if err := logger.Initialise(m.config.Logging); nil != err {
			return err
		}
		m.log = logger.New("main")
		m.log.Infof("version: %s  command: %s", version, command)

		if verbose {
			fmt.Fprintf(e, "database: %s\n", m.config.Database.Name)
		}

		m.store, err = storage.Open(m.config.Database.Name, storage.ReadWrite)
		if nil != err {
			m.log.Criticalf("storage open error: %s", err)
			logger.Finalise()
			return err
		}
		m.ledger = ledger.New(m.store, nil)

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.store {
			return nil
		}
		m.store.Close()
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
