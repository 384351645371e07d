// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/custody"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/storage"
)

// Transfer - move a quantity of an item from one holder to another
// and record the new custodian
func (l *Ledger) Transfer(from *account.Account, to *account.Account, id uint64, amount uint64) error {
	return l.update("transfer", func(trx storage.Transaction) error {
		err := l.requireNotPaused(trx)
		if nil != err {
			return err
		}

		if 0 == amount {
			return fault.ErrInvalidAmount
		}
		if nil == from || nil == to {
			return fault.ErrInvalidHolder
		}

		_, err = l.existingItem(trx, id)
		if nil != err {
			return err
		}

		remaining, err := l.balances.Subtract(trx, from, id, amount)
		if nil != err {
			return err
		}
		if 0 == remaining {
			l.holdings.Remove(trx, from, id)
		}

		previous, err := l.balances.Add(trx, to, id, amount)
		if nil != err {
			return err
		}
		if 0 == previous {
			l.holdings.Insert(trx, to, id)
		}

		_, err = l.custody.Append(trx, id, to, l.clock.Now(), custody.ReasonTransferred)
		if nil != err {
			return err
		}

		l.log.Infof("transfer: id: %d  amount: %d  from: %s  to: %s", id, amount, from, to)
		return nil
	})
}

// BalanceOf - quantity of an item held by an account
func (l *Ledger) BalanceOf(holder *account.Account, id uint64) uint64 {
	if nil == holder {
		return 0
	}
	n := uint64(0)
	l.view(func(r storage.Reader) {
		n = l.balances.Get(r, holder, id)
	})
	return n
}

// Supply - total units of an item ever minted and burned
func (l *Ledger) Supply(id uint64) (minted uint64, burned uint64) {
	l.view(func(r storage.Reader) {
		minted, burned = l.balances.Supply(r, id)
	})
	return
}

// increase a balance, adding the item to the holder's index when it
// was previously zero
func (l *Ledger) mint(trx storage.Transaction, to *account.Account, id uint64, amount uint64) error {
	previous, err := l.balances.Add(trx, to, id, amount)
	if nil != err {
		return err
	}
	if 0 == previous {
		l.holdings.Insert(trx, to, id)
	}
	return l.balances.Minted(trx, id, amount)
}

// decrease a balance, removing the item from the holder's index when
// it reaches zero
func (l *Ledger) burn(trx storage.Transaction, from *account.Account, id uint64, amount uint64) error {
	remaining, err := l.balances.Subtract(trx, from, id, amount)
	if nil != err {
		return err
	}
	if 0 == remaining {
		l.holdings.Remove(trx, from, id)
	}
	l.balances.Burned(trx, id, amount)
	return nil
}
