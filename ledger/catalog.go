// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/catalog"
	"github.com/bitmark-inc/itemledger/custody"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/storage"
)

// Register - create a new item, mint its quantity to the recipient and
// start its custody history
func (l *Ledger) Register(registrant *account.Account, recipient *account.Account, details *catalog.Details, quantity uint64) (uint64, error) {
	id := uint64(0)

	err := l.update("register", func(trx storage.Transaction) error {
		err := l.requireRole(trx, Manufacturer, registrant)
		if nil != err {
			return err
		}
		err = l.requireNotPaused(trx)
		if nil != err {
			return err
		}

		if 0 == quantity {
			return fault.ErrInvalidAmount
		}
		if nil == recipient || nil == details {
			return fault.ErrInvalidHolder
		}
		err = details.Validate()
		if nil != err {
			return err
		}
		if _, bound := l.catalog.LookupURL(trx, details.MetadataURL); bound {
			return fault.ErrDuplicateMetadataURL
		}

		id = l.nextId(trx)
		trx.PutN(l.store.Pool.State, nextIdKey, id+1)

		now := l.clock.Now()
		item := catalog.NewItem(id, details, registrant, now)
		err = l.catalog.Put(trx, item)
		if nil != err {
			return err
		}
		l.catalog.BindURL(trx, item.MetadataURL, id)

		err = l.mint(trx, recipient, id, quantity)
		if nil != err {
			return err
		}

		_, err = l.custody.Append(trx, id, recipient, now, custody.ReasonManufactured)
		if nil != err {
			return err
		}

		l.log.Infof("register: id: %d  name: %q  quantity: %d  to: %s", id, item.Name, quantity, recipient)
		return nil
	})
	if nil != err {
		return 0, err
	}
	return id, nil
}

// UpdateMetadata - administrator correction of an item's metadata url
// and content hash
func (l *Ledger) UpdateMetadata(caller *account.Account, id uint64, url string, hash catalog.ContentHash) error {
	return l.update("update", func(trx storage.Transaction) error {
		err := l.requireRole(trx, Administrator, caller)
		if nil != err {
			return err
		}
		err = l.requireNotPaused(trx)
		if nil != err {
			return err
		}

		item, err := l.existingItem(trx, id)
		if nil != err {
			return err
		}

		err = catalog.ValidateMetadataURL(url)
		if nil != err {
			return err
		}
		if boundId, bound := l.catalog.LookupURL(trx, url); bound && boundId != id {
			return fault.ErrDuplicateMetadataURL
		}

		l.catalog.UnbindURL(trx, item.MetadataURL)
		item.MetadataURL = url
		item.ContentHash = hash
		err = l.catalog.Put(trx, item)
		if nil != err {
			return err
		}
		l.catalog.BindURL(trx, url, id)

		l.log.Infof("update: id: %d  url: %q  hash: %s", id, url, hash)
		return nil
	})
}

// Destroy - burn one unit held by the named holder, close the custody
// history and mark the item as no longer existing
func (l *Ledger) Destroy(caller *account.Account, id uint64, holder *account.Account, reason string) error {
	return l.update("destroy", func(trx storage.Transaction) error {
		err := l.requireRole(trx, Customs, caller)
		if nil != err {
			return err
		}
		err = l.requireNotPaused(trx)
		if nil != err {
			return err
		}

		if nil == holder {
			return fault.ErrInvalidHolder
		}
		err = custody.ValidateReason(reason)
		if nil != err {
			return err
		}

		item, err := l.existingItem(trx, id)
		if nil != err {
			return err
		}

		err = l.burn(trx, holder, id, 1)
		if nil != err {
			return err
		}

		_, err = l.custody.Append(trx, id, nil, l.clock.Now(), reason)
		if nil != err {
			return err
		}

		item.Exists = false
		err = l.catalog.Put(trx, item)
		if nil != err {
			return err
		}

		l.log.Infof("destroy: id: %d  holder: %s  reason: %q", id, holder, reason)
		return nil
	})
}

// Item - a single item, including destroyed ones
func (l *Ledger) Item(id uint64) (*catalog.Item, error) {
	var item *catalog.Item
	found := false
	l.view(func(r storage.Reader) {
		item, found = l.catalog.Get(r, id)
	})
	if !found {
		return nil, fault.ErrItemNotFound
	}
	return item, nil
}

// LookupByURL - the item bound to a metadata url
func (l *Ledger) LookupByURL(url string) (*catalog.Item, error) {
	var item *catalog.Item
	found := false
	l.view(func(r storage.Reader) {
		id, bound := l.catalog.LookupURL(r, url)
		if bound {
			item, found = l.catalog.Get(r, id)
		}
	})
	if !found {
		return nil, fault.ErrItemNotFound
	}
	return item, nil
}

func (l *Ledger) nextId(r storage.Reader) uint64 {
	n, found := r.GetN(l.store.Pool.State, nextIdKey)
	if !found {
		return firstItemId
	}
	return n
}

// an item that was registered and not destroyed
func (l *Ledger) existingItem(r storage.Reader, id uint64) (*catalog.Item, error) {
	item, found := l.catalog.Get(r, id)
	if !found || !item.Exists {
		return nil, fault.ErrItemNotFound
	}
	return item, nil
}
