// Package leveldb is a wrapper of goleveldb.
package leveldb

import (
	"errors"

	"github.com/aqrl/xrpl-toolkit/common"
	"github.com/aqrl/xrpl-toolkit/log"
	goleveldb "github.com/syndtr/goleveldb/leveldb"
	dberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// lower bounds of the cache (MiB) and open file handles
const (
	minCache   = 16
	minHandles = 16
)

var _ KeyValueStore = &Database{}

// IsNotFoundErr is err 'ErrNotFound'
func IsNotFoundErr(err error) bool {
	return errors.Is(err, dberrors.ErrNotFound)
}

// Database is a goleveldb backed key-value store
type Database struct {
	lvldb *goleveldb.DB
}

func defaultOptions() *opt.Options {
	return &opt.Options{
		Filter:                 filter.NewBloomFilter(10),
		DisableSeeksCompaction: true,
	}
}

// New opens the database at path, recovering it if corrupted
func New(path string, cache int, handles int, readonly bool) (*Database, error) {
	if cache < minCache {
		cache = minCache
	}
	if handles < minHandles {
		handles = minHandles
	}
	options := defaultOptions()
	options.OpenFilesCacheCapacity = handles
	options.BlockCacheCapacity = cache / 2 * opt.MiB
	options.WriteBuffer = cache / 4 * opt.MiB
	options.ReadOnly = readonly

	log.Debug("open leveldb", "path", path,
		"cache", common.StorageSize(options.BlockCacheCapacity+options.WriteBuffer*2),
		"handles", handles, "readonly", readonly)

	db, err := goleveldb.OpenFile(path, options)
	if dberrors.IsCorrupted(err) {
		log.Warn("leveldb corrupted, recovering", "path", path, "err", err)
		db, err = goleveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, err
	}
	return &Database{lvldb: db}, nil
}

// NewMemory returns a Database kept in memory
func NewMemory() (*Database, error) {
	db, err := goleveldb.Open(storage.NewMemStorage(), defaultOptions())
	if err != nil {
		return nil, err
	}
	return &Database{lvldb: db}, nil
}

// Close closes the database
func (db *Database) Close() error {
	return db.lvldb.Close()
}

// Has reports whether key is present
func (db *Database) Has(key []byte) (bool, error) {
	return db.lvldb.Has(key, nil)
}

// Get returns the value of key, IsNotFoundErr if absent
func (db *Database) Get(key []byte) ([]byte, error) {
	return db.lvldb.Get(key, nil)
}

// Put sets key to value
func (db *Database) Put(key []byte, value []byte) error {
	return db.lvldb.Put(key, value, nil)
}

// Delete removes key
func (db *Database) Delete(key []byte) error {
	return db.lvldb.Delete(key, nil)
}

// NewBatch returns a batch applied atomically by Write
func (db *Database) NewBatch() Batch {
	return &batch{db: db.lvldb, b: new(goleveldb.Batch)}
}

// NewIterator iterates keys with prefix, from start (relative to prefix) on
func (db *Database) NewIterator(prefix []byte, start []byte) Iterator {
	r := util.BytesPrefix(prefix)
	r.Start = append(append([]byte{}, prefix...), start...)
	return db.lvldb.NewIterator(r, nil)
}

type batch struct {
	db *goleveldb.DB
	b  *goleveldb.Batch
}

func (b *batch) Put(key, value []byte) error {
	b.b.Put(key, value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.b.Delete(key)
	return nil
}

// Len is the number of queued operations
func (b *batch) Len() int {
	return b.b.Len()
}

func (b *batch) Write() error {
	return b.db.Write(b.b, nil)
}
