// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
)

// Pools - the set of pools in a store
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	State           *PoolHandle `prefix:"Z"`
	Roles           *PoolHandle `prefix:"R"`
	Items           *PoolHandle `prefix:"I"`
	MetadataURL     *PoolHandle `prefix:"U"`
	Balances        *PoolHandle `prefix:"Q"`
	Supply          *PoolHandle `prefix:"S"`
	HoldingCount    *PoolHandle `prefix:"N"`
	HoldingList     *PoolHandle `prefix:"L"`
	HoldingPosition *PoolHandle `prefix:"D"`
	CustodyCount    *PoolHandle `prefix:"K"`
	Custody         *PoolHandle `prefix:"H"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - one open ledger database
type Store struct {
	Pool   Pools
	log    *logger.L
	db     *leveldb.DB
	access Access
}

// Open - open up the database file
func Open(database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}

	return setup(db, database, readOnly)
}

// OpenMemory - a store that is discarded on Close
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "memory", ReadWrite)
}

func setup(db *leveldb.DB, name string, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database: %q version: %d > current version: %d", name, version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return nil, fmt.Errorf("database: %q is not initialised", name)
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	store := &Store{
		log:    log,
		db:     db,
		access: newDA(db, new(leveldb.Batch), newCache()),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(store.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&store.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			db:     db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Infof("opened: %q  version: %d", name, currentDBVersion)

	ok = true // prevent db close
	return store, nil
}

// Close - close the database connection
func (s *Store) Close() {
	if nil == s.db {
		return
	}
	s.db.Close()
	s.db = nil
	s.log.Info("closed")
	s.log.Flush()
}

// Begin - start the single writer transaction
func (s *Store) Begin() (Transaction, error) {
	err := s.access.Begin()
	if nil != err {
		return nil, err
	}
	return newTransaction(s.access), nil
}

// Committed - read access to committed data
func (s *Store) Committed() Reader {
	return committed{}
}

// PoolByPrefix - find the pool with the given prefix tag
func (s *Store) PoolByPrefix(tag string) (string, *PoolHandle) {
	poolType := reflect.TypeOf(s.Pool)
	poolValue := reflect.ValueOf(s.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if tag == fieldInfo.Tag.Get("prefix") {
			return fieldInfo.Name, poolValue.Field(i).Interface().(*PoolHandle)
		}
	}
	return "", nil
}

// PoolTags - map of prefix tag to pool name
func PoolTags() map[string]string {
	tags := make(map[string]string)
	poolType := reflect.TypeOf(Pools{})
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		tags[fieldInfo.Tag.Get("prefix")] = fieldInfo.Name
	}
	return tags
}

// return the stored version, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
