// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/binary"

	"github.com/bitmark-inc/itemledger/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
// Catalog:
//   Items        id  - packed item
//   MetadataURL  url - id

// Catalog - item records and the metadata url index
type Catalog struct {
	items *storage.PoolHandle
	urls  *storage.PoolHandle
}

// New - catalog over the pools of a store
func New(pools *storage.Pools) *Catalog {
	return &Catalog{
		items: pools.Items,
		urls:  pools.MetadataURL,
	}
}

// Put - store an item record, replacing any previous version
func (c *Catalog) Put(trx storage.Transaction, item *Item) error {
	packed, err := item.Pack()
	if nil != err {
		return err
	}
	trx.Put(c.items, encode(item.Id), packed)
	return nil
}

// Get - fetch an item, false if the id was never allocated
func (c *Catalog) Get(r storage.Reader, id uint64) (*Item, bool) {
	packed := r.Get(c.items, encode(id))
	if nil == packed {
		return nil, false
	}

	item, err := Unpack(packed)
	if nil != err {
		logger.Criticalf("catalog.Get: id: %d  record: %x  error: %s", id, packed, err)
		logger.Panic("catalog.Get: Items database corrupt")
	}
	return item, true
}

// BindURL - associate a metadata url with an item
func (c *Catalog) BindURL(trx storage.Transaction, url string, id uint64) {
	trx.PutN(c.urls, []byte(url), id)
}

// UnbindURL - remove a metadata url association
func (c *Catalog) UnbindURL(trx storage.Transaction, url string) {
	trx.Delete(c.urls, []byte(url))
}

// LookupURL - the item bound to a metadata url
func (c *Catalog) LookupURL(r storage.Reader, url string) (uint64, bool) {
	return r.GetN(c.urls, []byte(url))
}

func encode(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
