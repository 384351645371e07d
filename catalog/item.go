// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"time"
	"unicode/utf8"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/packing"
)

// limits in runes
const (
	minNameLength         = 1
	maxNameLength         = 64
	maxCategoryLength     = 64
	maxSerialNumberLength = 64
	maxOriginLength       = 256
	minMetadataURLLength  = 1
	maxMetadataURLLength  = 2048
)

// record tag, first varint of every packed item
const itemTag = 1

// Details - the caller supplied descriptive fields of an item
type Details struct {
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	SerialNumber string      `json:"serialNumber"`
	Origin       string      `json:"origin"`
	MetadataURL  string      `json:"metadataUrl"`
	ContentHash  ContentHash `json:"contentHash"`
}

// Item - one registered item
//
// never deleted, Exists is cleared on destruction
type Item struct {
	Id           uint64           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	SerialNumber string           `json:"serialNumber"`
	Timestamp    time.Time        `json:"timestamp"`
	Origin       string           `json:"origin"`
	ContentHash  ContentHash      `json:"contentHash"`
	MetadataURL  string           `json:"metadataUrl"`
	Registrant   *account.Account `json:"registrant"`
	Exists       bool             `json:"exists"`
}

// Validate - check field lengths
func (details *Details) Validate() error {
	if utf8.RuneCountInString(details.Name) < minNameLength {
		return fault.ErrNameTooShort
	}
	if utf8.RuneCountInString(details.Name) > maxNameLength {
		return fault.ErrNameTooLong
	}
	if utf8.RuneCountInString(details.Category) > maxCategoryLength {
		return fault.ErrCategoryTooLong
	}
	if utf8.RuneCountInString(details.SerialNumber) > maxSerialNumberLength {
		return fault.ErrSerialNumberTooLong
	}
	if utf8.RuneCountInString(details.Origin) > maxOriginLength {
		return fault.ErrOriginTooLong
	}
	return ValidateMetadataURL(details.MetadataURL)
}

// ValidateMetadataURL - check the url length
func ValidateMetadataURL(url string) error {
	if utf8.RuneCountInString(url) < minMetadataURLLength {
		return fault.ErrMetadataURLTooShort
	}
	if utf8.RuneCountInString(url) > maxMetadataURLLength {
		return fault.ErrMetadataURLTooLong
	}
	return nil
}

// NewItem - item record for a fresh registration
func NewItem(id uint64, details *Details, registrant *account.Account, timestamp time.Time) *Item {
	return &Item{
		Id:           id,
		Name:         details.Name,
		Category:     details.Category,
		SerialNumber: details.SerialNumber,
		Timestamp:    time.Unix(timestamp.Unix(), 0).UTC(),
		Origin:       details.Origin,
		ContentHash:  details.ContentHash,
		MetadataURL:  details.MetadataURL,
		Registrant:   registrant,
		Exists:       true,
	}
}

// Pack - validate and pack an item
func (item *Item) Pack() (packing.Packed, error) {
	if nil == item.Registrant {
		return nil, fault.ErrInvalidHolder
	}

	details := Details{
		Name:         item.Name,
		Category:     item.Category,
		SerialNumber: item.SerialNumber,
		Origin:       item.Origin,
		MetadataURL:  item.MetadataURL,
	}
	err := details.Validate()
	if nil != err {
		return nil, err
	}

	// concatenate bytes
	message := packing.New(itemTag)
	message = message.AppendUint64(item.Id)
	message = message.AppendString(item.Name)
	message = message.AppendString(item.Category)
	message = message.AppendString(item.SerialNumber)
	message = message.AppendUint64(uint64(item.Timestamp.Unix()))
	message = message.AppendString(item.Origin)
	message = message.AppendBytes(item.ContentHash[:])
	message = message.AppendString(item.MetadataURL)
	message = message.AppendBytes(item.Registrant.Bytes())
	message = message.AppendBool(item.Exists)
	return message, nil
}

// Unpack - turn a packed record back into an item
func Unpack(record packing.Packed) (*Item, error) {
	u := record.NewUnpacker()
	if itemTag != u.Tag() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrNotItemPack
	}

	item := &Item{}
	item.Id = u.Uint64()
	item.Name = u.String()
	item.Category = u.String()
	item.SerialNumber = u.String()
	item.Timestamp = time.Unix(int64(u.Uint64()), 0).UTC()
	item.Origin = u.String()
	hash := u.Bytes()
	item.MetadataURL = u.String()
	registrant := u.Bytes()
	item.Exists = u.Bool()

	if !u.Done() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrNotItemPack
	}

	err := ContentHashFromBytes(&item.ContentHash, hash)
	if nil != err {
		return nil, err
	}

	item.Registrant, err = account.FromBytes(registrant)
	if nil != err {
		return nil, err
	}

	return item, nil
}
