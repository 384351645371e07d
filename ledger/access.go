// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/fault"
	"github.com/bitmark-inc/itemledger/storage"
)

// Bootstrap - install the first administrator, only possible once
func (l *Ledger) Bootstrap(admin *account.Account) error {
	if nil == admin {
		return fault.ErrInvalidHolder
	}

	return l.update("bootstrap", func(trx storage.Transaction) error {
		if trx.Has(l.store.Pool.State, bootstrapKey) {
			return fault.ErrAlreadyBootstrapped
		}
		trx.Put(l.store.Pool.State, bootstrapKey, admin.Bytes())
		trx.Put(l.store.Pool.Roles, roleKey(Administrator, admin), []byte{})
		l.log.Infof("bootstrap administrator: %s", admin)
		return nil
	})
}

// Grant - give a role to an account
//
// administrator only, allowed while paused
func (l *Ledger) Grant(caller *account.Account, role Role, identity *account.Account) error {
	return l.update("grant", func(trx storage.Transaction) error {
		err := l.checkRoleChange(trx, caller, role, identity)
		if nil != err {
			return err
		}
		trx.Put(l.store.Pool.Roles, roleKey(role, identity), []byte{})
		l.log.Infof("grant: %s to: %s by: %s", role, identity, caller)
		return nil
	})
}

// Revoke - take a role away from an account
//
// administrator only, allowed while paused
func (l *Ledger) Revoke(caller *account.Account, role Role, identity *account.Account) error {
	return l.update("revoke", func(trx storage.Transaction) error {
		err := l.checkRoleChange(trx, caller, role, identity)
		if nil != err {
			return err
		}
		trx.Delete(l.store.Pool.Roles, roleKey(role, identity))
		l.log.Infof("revoke: %s from: %s by: %s", role, identity, caller)
		return nil
	})
}

func (l *Ledger) checkRoleChange(r storage.Reader, caller *account.Account, role Role, identity *account.Account) error {
	err := l.requireRole(r, Administrator, caller)
	if nil != err {
		return err
	}
	if !role.IsValid() {
		return fault.ErrInvalidRole
	}
	if nil == identity {
		return fault.ErrInvalidHolder
	}
	return nil
}

// Pause - stop all item mutations
func (l *Ledger) Pause(caller *account.Account) error {
	return l.update("pause", func(trx storage.Transaction) error {
		err := l.requireRole(trx, Administrator, caller)
		if nil != err {
			return err
		}
		if l.paused(trx) {
			return fault.ErrSystemPaused
		}
		trx.Put(l.store.Pool.State, pausedKey, []byte{1})
		l.log.Infof("paused by: %s", caller)
		return nil
	})
}

// Unpause - resume item mutations
func (l *Ledger) Unpause(caller *account.Account) error {
	return l.update("unpause", func(trx storage.Transaction) error {
		err := l.requireRole(trx, Administrator, caller)
		if nil != err {
			return err
		}
		if !l.paused(trx) {
			return fault.ErrNotPaused
		}
		trx.Delete(l.store.Pool.State, pausedKey)
		l.log.Infof("unpaused by: %s", caller)
		return nil
	})
}

// HasRole - check if an account holds a role
func (l *Ledger) HasRole(role Role, identity *account.Account) bool {
	if nil == identity {
		return false
	}
	has := false
	l.view(func(r storage.Reader) {
		has = r.Has(l.store.Pool.Roles, roleKey(role, identity))
	})
	return has
}

// RolesOf - every role held by an account
func (l *Ledger) RolesOf(identity *account.Account) []Role {
	roles := []Role{}
	if nil == identity {
		return roles
	}
	l.view(func(r storage.Reader) {
		for _, role := range Roles() {
			if r.Has(l.store.Pool.Roles, roleKey(role, identity)) {
				roles = append(roles, role)
			}
		}
	})
	return roles
}

// IsPaused - current pause state
func (l *Ledger) IsPaused() bool {
	paused := false
	l.view(func(r storage.Reader) {
		paused = l.paused(r)
	})
	return paused
}

func (l *Ledger) paused(r storage.Reader) bool {
	return r.Has(l.store.Pool.State, pausedKey)
}

func (l *Ledger) requireRole(r storage.Reader, role Role, caller *account.Account) error {
	if nil == caller || !r.Has(l.store.Pool.Roles, roleKey(role, caller)) {
		return fault.ErrUnauthorized
	}
	return nil
}

func (l *Ledger) requireNotPaused(r storage.Reader) error {
	if l.paused(r) {
		return fault.ErrSystemPaused
	}
	return nil
}

func roleKey(role Role, identity *account.Account) []byte {
	return append([]byte{byte(role)}, identity.Bytes()...)
}
