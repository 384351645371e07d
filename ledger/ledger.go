// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/itemledger/balance"
	"github.com/bitmark-inc/itemledger/catalog"
	"github.com/bitmark-inc/itemledger/custody"
	"github.com/bitmark-inc/itemledger/holding"
	"github.com/bitmark-inc/itemledger/storage"
	"github.com/bitmark-inc/logger"
)

// keys in the State pool
var (
	nextIdKey    = []byte("next-id")
	pausedKey    = []byte("paused")
	bootstrapKey = []byte("bootstrap")
)

// first item id, zero is never allocated
const firstItemId = 1

// Clock - source of record timestamps
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Ledger - the provenance engine over one store
//
// mutations are serialised and each runs in a single storage
// transaction; reads see committed data only
type Ledger struct {
	sync.RWMutex

	log   *logger.L
	store *storage.Store
	clock Clock

	catalog  *catalog.Catalog
	custody  *custody.Log
	holdings *holding.Index
	balances *balance.Book
}

// New - create a ledger over an open store, a nil clock uses system time
func New(store *storage.Store, clock Clock) *Ledger {
	if nil == clock {
		clock = systemClock{}
	}

	log := logger.New("ledger")
	log.Info("starting…")

	return &Ledger{
		log:      log,
		store:    store,
		clock:    clock,
		catalog:  catalog.New(&store.Pool),
		custody:  custody.New(&store.Pool),
		holdings: holding.New(&store.Pool),
		balances: balance.New(&store.Pool),
	}
}

// run a mutation in one transaction under the write lock, committing
// on success and discarding everything on any error
func (l *Ledger) update(operation string, f func(trx storage.Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.store.Begin()
	if nil != err {
		l.log.Criticalf("%s: begin error: %s", operation, err)
		return err
	}

	ok := false
	defer func() {
		if !ok {
			trx.Abort()
		}
	}()

	err = f(trx)
	if nil != err {
		l.log.Warnf("%s: rejected: %s", operation, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("%s: commit error: %s", operation, err)
		return err
	}
	ok = true

	l.log.Debugf("%s: committed", operation)
	return nil
}

// run a read under the shared lock against committed data
func (l *Ledger) view(f func(r storage.Reader)) {
	l.RLock()
	defer l.RUnlock()
	f(l.store.Committed())
}
