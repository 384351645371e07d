// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/itemledger/catalog"
	"github.com/bitmark-inc/itemledger/fixtures"
	"github.com/bitmark-inc/itemledger/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func TestCatalogStore(t *testing.T) {
	store, err := storage.OpenMemory()
	assert.Nil(t, err, "open memory store")
	defer store.Close()

	c := catalog.New(&store.Pool)
	r := store.Committed()

	item := catalog.NewItem(5, &testDetails, fixtures.Manufacturer, time.Unix(1583316672, 0))

	trx, _ := store.Begin()
	assert.Nil(t, c.Put(trx, item), "put")
	c.BindURL(trx, item.MetadataURL, item.Id)

	staged, found := c.Get(trx, 5)
	assert.True(t, found, "staged get")
	assert.Equal(t, item, staged, "staged item")

	_, found = c.Get(r, 5)
	assert.False(t, found, "uncommitted item visible")
	assert.Nil(t, trx.Commit(), "commit")

	actual, found := c.Get(r, 5)
	assert.True(t, found, "committed get")
	assert.Equal(t, item, actual, "committed item")

	_, found = c.Get(r, 6)
	assert.False(t, found, "unknown id")

	id, found := c.LookupURL(r, testDetails.MetadataURL)
	assert.True(t, found, "url bound")
	assert.Equal(t, uint64(5), id, "url id")

	trx, _ = store.Begin()
	c.UnbindURL(trx, testDetails.MetadataURL)
	c.BindURL(trx, "ipfs://replacement", 5)
	assert.Nil(t, trx.Commit(), "commit rebind")

	_, found = c.LookupURL(r, testDetails.MetadataURL)
	assert.False(t, found, "old url still bound")
	id, found = c.LookupURL(r, "ipfs://replacement")
	assert.True(t, found, "new url bound")
	assert.Equal(t, uint64(5), id, "new url id")
}

func TestCatalogPutInvalid(t *testing.T) {
	store, err := storage.OpenMemory()
	assert.Nil(t, err, "open memory store")
	defer store.Close()

	c := catalog.New(&store.Pool)

	item := catalog.NewItem(1, &testDetails, fixtures.Manufacturer, time.Now())
	item.MetadataURL = ""

	trx, _ := store.Begin()
	defer trx.Abort()
	assert.NotNil(t, c.Put(trx, item), "invalid item stored")
}

func TestCorruptItemPanics(t *testing.T) {
	store, err := storage.OpenMemory()
	assert.Nil(t, err, "open memory store")
	defer store.Close()

	c := catalog.New(&store.Pool)

	trx, _ := store.Begin()
	trx.Put(store.Pool.Items, []byte{0, 0, 0, 0, 0, 0, 0, 1}, []byte{0x01, 0x01})
	assert.Nil(t, trx.Commit(), "commit")

	assert.Panics(t, func() { c.Get(store.Committed(), 1) }, "corrupt record")
}
