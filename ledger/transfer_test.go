// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/itemledger/custody"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/fixtures"
)

// transfer the whole of an item from A to B
func TestTransferWholeItem(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	a := fixtures.Customer1
	b := fixtures.Customer2

	id, _ := l.Register(fixtures.Manufacturer, a, details(1), 1)
	assert.Nil(t, l.Transfer(a, b, id, 1), "transfer")

	assert.Equal(t, uint64(0), l.BalanceOf(a, id), "balance A")
	_, idsA := l.GetAllHoldings(a)
	assert.Equal(t, []uint64{}, idsA, "holdings A")

	assert.Equal(t, uint64(1), l.BalanceOf(b, id), "balance B")
	_, idsB := l.GetAllHoldings(b)
	assert.Equal(t, []uint64{id}, idsB, "holdings B")

	history, _ := l.History(id)
	assert.Equal(t, 2, len(history), "history length")
	assert.Equal(t, custody.ReasonTransferred, history[1].Reason, "reason")
	assert.True(t, b.Equal(history[1].Holder), "holder")

	record, err := l.CustodyRecord(id, 1)
	assert.Nil(t, err, "custody record")
	assert.Equal(t, history[1], *record, "custody record value")
}

// three items to A then id 2 to B
func TestTransferMiddleItem(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	a := fixtures.Customer1
	b := fixtures.Customer2

	for n := 1; n <= 3; n += 1 {
		id, err := l.Register(fixtures.Manufacturer, a, details(n), 1)
		assert.Nil(t, err, "register: %d", n)
		assert.Equal(t, uint64(n), id, "id: %d", n)
	}

	assert.Nil(t, l.Transfer(a, b, 2, 1), "transfer")

	_, idsA := l.GetAllHoldings(a)
	sort.Slice(idsA, func(i, j int) bool { return idsA[i] < idsA[j] })
	assert.Equal(t, []uint64{1, 3}, idsA, "holdings A")

	itemsB, idsB := l.GetAllHoldings(b)
	assert.Equal(t, []uint64{2}, idsB, "holdings B")
	assert.Equal(t, uint64(2), itemsB[0].Id, "item B")
}

func TestPartialTransfer(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	a := fixtures.Customer1
	b := fixtures.Customer2

	id, _ := l.Register(fixtures.Manufacturer, a, details(1), 10)

	assert.Nil(t, l.Transfer(a, b, id, 4), "first transfer")
	assert.Nil(t, l.Transfer(a, b, id, 2), "second transfer")

	assert.Equal(t, uint64(4), l.BalanceOf(a, id), "balance A")
	assert.Equal(t, uint64(6), l.BalanceOf(b, id), "balance B")
	assert.Equal(t, uint64(1), l.GetHoldingsCount(a), "A still holds")
	assert.Equal(t, uint64(1), l.GetHoldingsCount(b), "B holds once")

	n, _ := l.HistoryCount(id)
	assert.Equal(t, uint64(3), n, "history count")
}

func TestTransferRejections(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	a := fixtures.Customer1
	b := fixtures.Customer2

	id, _ := l.Register(fixtures.Manufacturer, a, details(1), 2)

	tests := []struct {
		from   int
		amount uint64
		id     uint64
		err    error
	}{
		{0, 0, id, fault.ErrInvalidAmount},
		{0, 3, id, fault.ErrInsufficientBalance},
		{1, 1, id, fault.ErrInsufficientBalance},
		{0, 1, 99, fault.ErrItemNotFound},
		{0, 1, 0, fault.ErrItemNotFound},
	}

	for i, test := range tests {
		from := a
		to := b
		if 1 == test.from {
			from, to = b, a
		}
		assert.Equal(t, test.err, l.Transfer(from, to, test.id, test.amount), "%d: transfer", i)
	}

	assert.Equal(t, fault.ErrInvalidHolder, l.Transfer(a, nil, id, 1), "nil recipient")
	assert.Equal(t, fault.ErrInvalidHolder, l.Transfer(nil, b, id, 1), "nil sender")

	// nothing changed
	assert.Equal(t, uint64(2), l.BalanceOf(a, id), "balance A")
	assert.Equal(t, uint64(0), l.BalanceOf(b, id), "balance B")
	assert.Equal(t, uint64(0), l.GetHoldingsCount(b), "holdings B")
	n, _ := l.HistoryCount(id)
	assert.Equal(t, uint64(1), n, "history count")
}

func TestSelfTransfer(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	a := fixtures.Customer1

	id1, _ := l.Register(fixtures.Manufacturer, a, details(1), 1)
	id2, _ := l.Register(fixtures.Manufacturer, a, details(2), 1)

	assert.Nil(t, l.Transfer(a, a, id1, 1), "self transfer")

	assert.Equal(t, uint64(1), l.BalanceOf(a, id1), "balance")
	_, ids := l.GetAllHoldings(a)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.Equal(t, []uint64{id1, id2}, ids, "holdings")

	history, _ := l.History(id1)
	assert.Equal(t, 2, len(history), "history length")
}

func TestTransferDestroyedItem(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	a := fixtures.Customer1

	id, _ := l.Register(fixtures.Manufacturer, a, details(1), 2)
	assert.Nil(t, l.Destroy(fixtures.Customs, id, a, "recalled"), "destroy")

	assert.Equal(t, fault.ErrItemNotFound, l.Transfer(a, fixtures.Customer2, id, 1), "transfer destroyed")
	assert.Equal(t, uint64(1), l.BalanceOf(a, id), "remaining unit")
}
