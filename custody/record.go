// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"time"
	"unicode/utf8"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/packing"
)

// reasons written by the ledger itself
const (
	ReasonManufactured = "manufactured"
	ReasonTransferred  = "transferred"
)

// limits in runes
const (
	minReasonLength = 1
	maxReasonLength = 128
)

// record tag, first varint of every packed record
const recordTag = 2

// Record - one change of custody
//
// a nil Holder means the item left custody (destroyed)
type Record struct {
	Holder    *account.Account `json:"holder"`
	Timestamp time.Time        `json:"timestamp"`
	Reason    string           `json:"reason"`
}

// ValidateReason - check the reason length
func ValidateReason(reason string) error {
	if utf8.RuneCountInString(reason) < minReasonLength {
		return fault.ErrReasonTooShort
	}
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return fault.ErrReasonTooLong
	}
	return nil
}

// HolderName - text form of the holder, "none" when absent
func (record *Record) HolderName() string {
	return record.Holder.String()
}

// Pack - validate and pack a record
func (record *Record) Pack() (packing.Packed, error) {
	err := ValidateReason(record.Reason)
	if nil != err {
		return nil, err
	}

	message := packing.New(recordTag)
	if nil == record.Holder {
		message = message.AppendBool(false)
	} else {
		message = message.AppendBool(true)
		message = message.AppendBytes(record.Holder.Bytes())
	}
	message = message.AppendUint64(uint64(record.Timestamp.Unix()))
	message = message.AppendString(record.Reason)
	return message, nil
}

// Unpack - turn a packed record back into a custody record
func Unpack(packed packing.Packed) (*Record, error) {
	u := packed.NewUnpacker()
	if recordTag != u.Tag() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrNotCustodyRecordPack
	}

	record := &Record{}

	var holder []byte
	if u.Bool() {
		holder = u.Bytes()
	}
	record.Timestamp = time.Unix(int64(u.Uint64()), 0).UTC()
	record.Reason = u.String()

	if !u.Done() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrNotCustodyRecordPack
	}

	if nil != holder {
		a, err := account.FromBytes(holder)
		if nil != err {
			return nil, err
		}
		record.Holder = a
	}

	return record, nil
}
