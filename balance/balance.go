// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"encoding/binary"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
// Balances:
//   Balances  holder ⧺ id - quantity held, absent when zero
//   Supply    id          - minted ⧺ burned

const uint64ByteSize = 8

// Book - quantities held per holder and item together with each
// item's total supply
type Book struct {
	balances *storage.PoolHandle
	supply   *storage.PoolHandle
}

// New - balance book over the pools of a store
func New(pools *storage.Pools) *Book {
	return &Book{
		balances: pools.Balances,
		supply:   pools.Supply,
	}
}

// Get - quantity of an item held by holder, zero if none
func (b *Book) Get(r storage.Reader, holder *account.Account, id uint64) uint64 {
	n, _ := r.GetN(b.balances, key(holder, id))
	return n
}

// Add - increase the holder's quantity and return the previous value
func (b *Book) Add(trx storage.Transaction, holder *account.Account, id uint64, amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, fault.ErrInvalidAmount
	}

	bKey := key(holder, id)
	previous, _ := trx.GetN(b.balances, bKey)
	if previous+amount < previous {
		return previous, fault.ErrQuantityOverflow
	}

	trx.PutN(b.balances, bKey, previous+amount)
	return previous, nil
}

// Subtract - decrease the holder's quantity and return the remainder
//
// the record is deleted when it reaches zero
func (b *Book) Subtract(trx storage.Transaction, holder *account.Account, id uint64, amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, fault.ErrInvalidAmount
	}

	bKey := key(holder, id)
	previous, _ := trx.GetN(b.balances, bKey)
	if previous < amount {
		return previous, fault.ErrInsufficientBalance
	}

	remaining := previous - amount
	if 0 == remaining {
		trx.Delete(b.balances, bKey)
	} else {
		trx.PutN(b.balances, bKey, remaining)
	}
	return remaining, nil
}

// Supply - total units ever minted and burned for an item
func (b *Book) Supply(r storage.Reader, id uint64) (minted uint64, burned uint64) {
	return unpackSupply(id, r.Get(b.supply, encode(id)))
}

// Minted - record newly minted units
func (b *Book) Minted(trx storage.Transaction, id uint64, amount uint64) error {
	minted, burned := b.Supply(trx, id)
	if minted+amount < minted {
		return fault.ErrQuantityOverflow
	}
	trx.Put(b.supply, encode(id), packSupply(minted+amount, burned))
	return nil
}

// Burned - record destroyed units
func (b *Book) Burned(trx storage.Transaction, id uint64, amount uint64) {
	minted, burned := b.Supply(trx, id)
	if burned+amount > minted {
		logger.Criticalf("balance.Burned: id: %d  minted: %d  burned: %d + %d", id, minted, burned, amount)
		logger.Panic("balance.Burned: Supply database corrupt")
	}
	trx.Put(b.supply, encode(id), packSupply(minted, burned+amount))
}

func packSupply(minted uint64, burned uint64) []byte {
	buffer := make([]byte, 2*uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, minted)
	binary.BigEndian.PutUint64(buffer[uint64ByteSize:], burned)
	return buffer
}

func unpackSupply(id uint64, buffer []byte) (uint64, uint64) {
	if nil == buffer {
		return 0, 0
	}
	if 2*uint64ByteSize != len(buffer) {
		logger.Panicf("balance.Supply: id: %d  record: %x  Supply database corrupt", id, buffer)
	}
	return binary.BigEndian.Uint64(buffer), binary.BigEndian.Uint64(buffer[uint64ByteSize:])
}

func key(holder *account.Account, id uint64) []byte {
	return append(holder.Bytes(), encode(id)...)
}

func encode(n uint64) []byte {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
