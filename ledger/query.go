// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/catalog"
	"github.com/bitmark-inc/itemledger/custody"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/storage"
	"github.com/bitmark-inc/logger"
)

// Info - summary of the ledger state
type Info struct {
	NextId        uint64           `json:"nextId"`
	Paused        bool             `json:"paused"`
	Administrator *account.Account `json:"administrator"`
}

// GetInfo - current counters and flags
func (l *Ledger) GetInfo() *Info {
	info := &Info{}
	l.view(func(r storage.Reader) {
		info.NextId = l.nextId(r)
		info.Paused = l.paused(r)
		if admin := r.Get(l.store.Pool.State, bootstrapKey); nil != admin {
			a, err := account.FromBytes(admin)
			logger.PanicIfError("ledger.GetInfo: bootstrap record", err)
			info.Administrator = a
		}
	})
	return info
}

// NextId - the id the next registration will receive
func (l *Ledger) NextId() uint64 {
	n := uint64(0)
	l.view(func(r storage.Reader) {
		n = l.nextId(r)
	})
	return n
}

// GetRange - the items with ids start..end inclusive
//
// entries for ids never allocated or destroyed are zero items with a
// false flag; the result always has end-start+1 entries so the caller
// bounds the span
func (l *Ledger) GetRange(start uint64, end uint64) ([]catalog.Item, []bool, error) {
	if end < start {
		return nil, nil, fault.ErrInvalidRange
	}

	count := end - start + 1
	items := make([]catalog.Item, count)
	valid := make([]bool, count)

	l.view(func(r storage.Reader) {
		next := l.nextId(r)
		for k := uint64(0); k < count; k += 1 {
			id := start + k
			if id < firstItemId || id >= next {
				continue
			}
			item, found := l.catalog.Get(r, id)
			if found && item.Exists {
				items[k] = *item
				valid[k] = true
			}
		}
	})
	return items, valid, nil
}

// GetHoldingsPage - up to count held items starting at a position in
// the holder's index, empty when start is beyond the end
func (l *Ledger) GetHoldingsPage(holder *account.Account, start uint64, count uint64) ([]catalog.Item, []uint64, error) {
	if 0 == count {
		return nil, nil, fault.ErrInvalidRange
	}
	if nil == holder {
		return nil, nil, fault.ErrInvalidHolder
	}

	var items []catalog.Item
	var ids []uint64
	l.view(func(r storage.Reader) {
		ids = l.holdings.List(r, holder, start, count)
		items = l.itemsFor(r, ids)
	})
	return items, ids, nil
}

// GetAllHoldings - every held item, cost grows with the holder's index
func (l *Ledger) GetAllHoldings(holder *account.Account) ([]catalog.Item, []uint64) {
	if nil == holder {
		return []catalog.Item{}, []uint64{}
	}

	var items []catalog.Item
	var ids []uint64
	l.view(func(r storage.Reader) {
		ids = l.holdings.List(r, holder, 0, l.holdings.Count(r, holder))
		items = l.itemsFor(r, ids)
	})
	return items, ids
}

// GetHoldingsCount - number of distinct items held
func (l *Ledger) GetHoldingsCount(holder *account.Account) uint64 {
	if nil == holder {
		return 0
	}
	n := uint64(0)
	l.view(func(r storage.Reader) {
		n = l.holdings.Count(r, holder)
	})
	return n
}

// CustodyRecord - one entry of an item's history
func (l *Ledger) CustodyRecord(id uint64, index uint64) (*custody.Record, error) {
	var record *custody.Record
	var err error
	l.view(func(r storage.Reader) {
		if _, found := l.catalog.Get(r, id); !found {
			err = fault.ErrItemNotFound
			return
		}
		record, err = l.custody.Get(r, id, index)
	})
	return record, err
}

// HistoryCount - number of entries in an item's history
func (l *Ledger) HistoryCount(id uint64) (uint64, error) {
	n := uint64(0)
	var err error
	l.view(func(r storage.Reader) {
		if _, found := l.catalog.Get(r, id); !found {
			err = fault.ErrItemNotFound
			return
		}
		n = l.custody.Count(r, id)
	})
	return n, err
}

// History - the full provenance of an item, oldest first
func (l *Ledger) History(id uint64) ([]custody.Record, error) {
	var records []custody.Record
	var err error
	l.view(func(r storage.Reader) {
		if _, found := l.catalog.Get(r, id); !found {
			err = fault.ErrItemNotFound
			return
		}
		records, err = l.custody.History(r, id)
	})
	return records, err
}

func (l *Ledger) itemsFor(r storage.Reader, ids []uint64) []catalog.Item {
	items := make([]catalog.Item, 0, len(ids))
	for _, id := range ids {
		item, found := l.catalog.Get(r, id)
		if !found {
			logger.Panicf("ledger: held id: %d has no item record", id)
		}
		items = append(items, *item)
	}
	return items
}
