// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/storage"
	"github.com/bitmark-inc/itemledger/storage/mocks"
)

const (
	getDefaultKey = "key"
)

var (
	getDefaultValue = []byte{'a'}
)

func newMemoryDB(t *testing.T) *leveldb.DB {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	assert.Nil(t, err, "open memory db")
	return db
}

func setupDummyMockCache(ctl *gomock.Controller) *mocks.MockCache {
	mockCache := mocks.NewMockCache(ctl)
	mockCache.EXPECT().Get(gomock.Any()).Return(nil, storage.DBPut, false).AnyTimes()
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockCache.EXPECT().Clear().AnyTimes()

	return mockCache
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(ctl))

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should with not error")

	err = da.Begin()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "second time Begin should return error")
}

func TestCommitWithoutBegin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(ctl))

	err := da.Commit()
	assert.Equal(t, fault.ErrTransactionNotInProgress, err, "commit without begin")
}

func TestCommitUnlockInUse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(ctl))

	_ = da.Begin()
	assert.True(t, da.InUse(), "not in use after begin")
	_ = da.Commit()
	assert.False(t, da.InUse(), "still in use after commit")

	err := da.Begin()
	assert.Nil(t, err, "did not reset internal inUse")
}

func TestCommitResetTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(ctl))

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	assert.NotEqual(t, 0, len(da.DumpTx()), "batch not staged")
	_ = da.Commit()

	assert.Equal(t, 0, len(da.DumpTx()), "Commit did not reset transaction")
}

func TestCommitWriteToDB(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(ctl))

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	_ = da.Commit()

	actual, err := db.Get([]byte{'a'}, nil)
	assert.Nil(t, err, "read db")
	assert.Equal(t, []byte{'b'}, actual, "commit not write to db")
}

func TestAbortDiscardsStagedWrites(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(storage.DBPut, "a", []byte{'b'}).Times(1)
	mc.EXPECT().Clear().Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	da.Abort()

	_, err := db.Get([]byte{'a'}, nil)
	assert.Equal(t, leveldb.ErrNotFound, err, "abort wrote to db")
	assert.False(t, da.InUse(), "still in use after abort")
}

func TestPutActionCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(storage.DBPut, "a", []byte{'b'}).Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
}

func TestDeleteActionCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	mc := mocks.NewMockCache(ctl)
	gomock.InOrder(
		mc.EXPECT().Set(storage.DBPut, "a", []byte{'b'}).Times(1),
		mc.EXPECT().Set(storage.DBDelete, "a", gomock.Nil()).Times(1),
	)

	da := storage.NewDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	da.Delete([]byte{'a'})
}

func TestCommitClearsCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(storage.DBPut, "a", []byte{'b'}).Times(1)
	mc.EXPECT().Clear().Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	_ = da.Commit()
}

func TestGetActionReadsFromCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(storage.DBPut, getDefaultKey, getDefaultValue).Times(1)
	mc.EXPECT().Get(getDefaultKey).Return(getDefaultValue, storage.DBPut, true).Times(1)
	mc.EXPECT().Clear().Times(0)

	da := storage.NewDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte(getDefaultKey), getDefaultValue)
	actual, err := da.Get([]byte(getDefaultKey))

	assert.Nil(t, err, "cached get")
	assert.Equal(t, getDefaultValue, actual, "wrong cached value")
}

func TestGetActionSeesStagedDelete(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	_ = db.Put([]byte(getDefaultKey), getDefaultValue, nil)

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get(getDefaultKey).Return(nil, storage.DBDelete, true).Times(2)

	da := storage.NewDA(db, new(leveldb.Batch), mc)

	actual, err := da.Get([]byte(getDefaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "staged delete visible")
	assert.Nil(t, actual, "deleted value returned")

	found, err := da.Has([]byte(getDefaultKey))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "staged delete still present")
}

func TestGetActionReadDBIfNotInCache(t *testing.T) {
	key := "random"
	value := []byte{'a', 'b', 'c'}

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := newMemoryDB(t)
	defer db.Close()

	_ = db.Put([]byte(key), value, nil)

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get(key).Return(nil, storage.DBPut, false).Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mc)

	actual, err := da.Get([]byte(key))

	assert.Nil(t, err, "db get")
	assert.Equal(t, value, actual, "db value not read")
}

func TestRealCacheOverlay(t *testing.T) {
	db := newMemoryDB(t)
	defer db.Close()

	da := storage.NewDA(db, new(leveldb.Batch), storage.NewCache())

	_ = da.Begin()
	da.Put([]byte{'x'}, []byte{1})
	v, err := da.Get([]byte{'x'})
	assert.Nil(t, err, "staged get")
	assert.Equal(t, []byte{1}, v, "staged value")

	da.Delete([]byte{'x'})
	_, err = da.Get([]byte{'x'})
	assert.Equal(t, leveldb.ErrNotFound, err, "staged delete")

	assert.Nil(t, da.Commit(), "commit")
	has, _ := db.Has([]byte{'x'}, nil)
	assert.False(t, has, "put then delete left a value")
}
