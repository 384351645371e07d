// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package holding

import (
	"encoding/binary"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
// Holdings:
//   HoldingCount     holder       - number of ids in the holder's list
//   HoldingList      holder ⧺ pos - id at position pos
//   HoldingPosition  holder ⧺ id  - position of id in the holder's list

const uint64ByteSize = 8

// Index - per holder unordered list of held item ids with O(1)
// membership, insert and remove
type Index struct {
	count    *storage.PoolHandle
	list     *storage.PoolHandle
	position *storage.PoolHandle
}

// New - index over the three holding pools of a store
func New(pools *storage.Pools) *Index {
	return &Index{
		count:    pools.HoldingCount,
		list:     pools.HoldingList,
		position: pools.HoldingPosition,
	}
}

// Insert - append id to the end of the holder's list
//
// the id must not already be present
func (ix *Index) Insert(trx storage.Transaction, holder *account.Account, id uint64) {
	hKey := holder.Bytes()
	dKey := key(hKey, id)

	if trx.Has(ix.position, dKey) {
		logger.Criticalf("holding.Insert: holder: %s  id: %d already present", holder, id)
		logger.Panic("holding.Insert: HoldingPosition database corrupt")
	}

	n, _ := trx.GetN(ix.count, hKey)

	trx.Put(ix.list, key(hKey, n), encode(id))
	trx.PutN(ix.position, dKey, n)
	trx.PutN(ix.count, hKey, n+1)
}

// Remove - delete id from the holder's list by moving the last entry
// into its slot
//
// the id must be present
func (ix *Index) Remove(trx storage.Transaction, holder *account.Account, id uint64) {
	hKey := holder.Bytes()
	dKey := key(hKey, id)

	pos, found := trx.GetN(ix.position, dKey)
	if !found {
		logger.Criticalf("holding.Remove: holder: %s  id: %d not present", holder, id)
		logger.Panic("holding.Remove: HoldingPosition database corrupt")
	}

	n, found := trx.GetN(ix.count, hKey)
	if !found || pos >= n {
		logger.Criticalf("holding.Remove: holder: %s  id: %d  position: %d  count: %d", holder, id, pos, n)
		logger.Panic("holding.Remove: HoldingCount database corrupt")
	}
	last := n - 1

	if pos != last {
		lastId, found := trx.GetN(ix.list, key(hKey, last))
		if !found {
			logger.Criticalf("holding.Remove: holder: %s  missing last entry: %d", holder, last)
			logger.Panic("holding.Remove: HoldingList database corrupt")
		}
		trx.Put(ix.list, key(hKey, pos), encode(lastId))
		trx.PutN(ix.position, key(hKey, lastId), pos)
	}

	trx.Delete(ix.list, key(hKey, last))
	trx.Delete(ix.position, dKey)

	if 0 == last {
		trx.Delete(ix.count, hKey)
	} else {
		trx.PutN(ix.count, hKey, last)
	}
}

// Contains - check if the holder's list includes id
func (ix *Index) Contains(r storage.Reader, holder *account.Account, id uint64) bool {
	return r.Has(ix.position, key(holder.Bytes(), id))
}

// Count - length of the holder's list
func (ix *Index) Count(r storage.Reader, holder *account.Account) uint64 {
	n, _ := r.GetN(ix.count, holder.Bytes())
	return n
}

// At - the id at a position in the holder's list
func (ix *Index) At(r storage.Reader, holder *account.Account, pos uint64) (uint64, bool) {
	return r.GetN(ix.list, key(holder.Bytes(), pos))
}

// Position - the position of id in the holder's list
func (ix *Index) Position(r storage.Reader, holder *account.Account, id uint64) (uint64, bool) {
	return r.GetN(ix.position, key(holder.Bytes(), id))
}

// List - up to count ids starting at position start, empty if start
// is beyond the end
func (ix *Index) List(r storage.Reader, holder *account.Account, start uint64, count uint64) []uint64 {
	hKey := holder.Bytes()
	n, _ := r.GetN(ix.count, hKey)
	if start >= n {
		return []uint64{}
	}

	end := n
	if count < n-start {
		end = start + count
	}

	ids := make([]uint64, 0, end-start)
	for pos := start; pos < end; pos += 1 {
		id, found := r.GetN(ix.list, key(hKey, pos))
		if !found {
			logger.Criticalf("holding.List: holder: %s  missing entry: %d of %d", holder, pos, n)
			logger.Panic("holding.List: HoldingList database corrupt")
		}
		ids = append(ids, id)
	}
	return ids
}

func key(hKey []byte, n uint64) []byte {
	k := make([]byte, len(hKey), len(hKey)+uint64ByteSize)
	copy(k, hKey)
	return append(k, encode(n)...)
}

func encode(n uint64) []byte {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
