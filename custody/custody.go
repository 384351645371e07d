// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
// Custody:
//   CustodyCount  id         - number of records for the item
//   Custody       id ⧺ index - packed record

// Log - append only custody history of every item
type Log struct {
	count   *storage.PoolHandle
	records *storage.PoolHandle
}

// New - custody log over the pools of a store
func New(pools *storage.Pools) *Log {
	return &Log{
		count:   pools.CustodyCount,
		records: pools.Custody,
	}
}

// Append - add a record to the end of an item's history and return
// its index
//
// the timestamp is raised to that of the previous record if the
// clock went backwards
func (l *Log) Append(trx storage.Transaction, id uint64, holder *account.Account, timestamp time.Time, reason string) (uint64, error) {
	n, _ := trx.GetN(l.count, encode(id))

	timestamp = time.Unix(timestamp.Unix(), 0).UTC()
	if n > 0 {
		previous, err := l.Get(trx, id, n-1)
		if nil != err {
			logger.Criticalf("custody.Append: id: %d  missing record: %d", id, n-1)
			logger.Panic("custody.Append: Custody database corrupt")
		}
		if timestamp.Before(previous.Timestamp) {
			timestamp = previous.Timestamp
		}
	}

	record := &Record{
		Holder:    holder,
		Timestamp: timestamp,
		Reason:    reason,
	}
	packed, err := record.Pack()
	if nil != err {
		return 0, err
	}

	trx.Put(l.records, key(id, n), packed)
	trx.PutN(l.count, encode(id), n+1)

	return n, nil
}

// Count - number of records in an item's history
func (l *Log) Count(r storage.Reader, id uint64) uint64 {
	n, _ := r.GetN(l.count, encode(id))
	return n
}

// Get - one record of an item's history
func (l *Log) Get(r storage.Reader, id uint64, index uint64) (*Record, error) {
	packed := r.Get(l.records, key(id, index))
	if nil == packed {
		return nil, fault.ErrCustodyRecordNotFound
	}
	return unpack(id, index, packed), nil
}

// History - every record of an item, oldest first
//
// the records are scanned from committed data so r must be a committed
// reader, the count it returns must match the scan
func (l *Log) History(r storage.Reader, id uint64) ([]Record, error) {
	n := l.Count(r, id)
	records := make([]Record, 0, n)

	cursor := l.records.NewFetchCursor().Seek(key(id, 0))
	if id < ^uint64(0) {
		cursor.Limit(encode(id + 1))
	}

	err := cursor.Map(func(k []byte, value []byte) error {
		index := binary.BigEndian.Uint64(k[8:])
		if uint64(len(records)) != index {
			logger.Criticalf("custody.History: id: %d  expected index: %d  actual: %d", id, len(records), index)
			logger.Panic("custody.History: Custody database corrupt")
		}
		records = append(records, *unpack(id, index, value))
		return nil
	})
	if nil != err {
		return nil, err
	}
	if uint64(len(records)) != n {
		logger.Criticalf("custody.History: id: %d  count: %d  records: %d", id, n, len(records))
		logger.Panic("custody.History: Custody database corrupt")
	}
	return records, nil
}

func unpack(id uint64, index uint64, packed []byte) *Record {
	record, err := Unpack(packed)
	if nil != err {
		logger.Criticalf("custody: id: %d  index: %d  record: %x  error: %s", id, index, packed, err)
		logger.Panic("custody: Custody database corrupt")
	}
	return record
}

func key(id uint64, index uint64) []byte {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer, id)
	binary.BigEndian.PutUint64(buffer[8:], index)
	return buffer
}

func encode(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
