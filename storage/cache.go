// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - staged writes of the current transaction keyed by full database key
type Cache interface {
	Get(string) ([]byte, DBOperation, bool)
	Set(DBOperation, string, []byte)
	Clear()
}

// DBOperation - the kind of staged write
type DBOperation int

const (
	DBPut DBOperation = iota
	DBDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    DBOperation
	value []byte
}

// staged entries must survive until commit or abort, so nothing expires
func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - return the staged value and the operation that staged it
func (c *dbCache) Get(key string) ([]byte, DBOperation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, DBPut, false
	}

	data := obj.(cacheData)
	return data.value, data.op, true
}

func (c *dbCache) Set(op DBOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
