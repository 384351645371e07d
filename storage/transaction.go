// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
)

// Transaction - staged writes against the pools of one store
type Transaction interface {
	Reader
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type transaction struct {
	access Access
}

func newTransaction(access Access) *transaction {
	return &transaction{
		access: access,
	}
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.access.Put(p.prefixKey(key), value)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.access.Put(p.prefixKey(key), encodeN(value))
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.access.Delete(p.prefixKey(key))
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	return p.get(t.access.Get, key)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	value, err := t.access.Has(p.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return value
}

func (t *transaction) Commit() error {
	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.access.Abort()
}
