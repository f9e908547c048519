// Package walletstore keeps named wallets in a local leveldb database.
package walletstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/aqrl/xrpl-toolkit/leveldb"
	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/xrpl/wallet"
)

const (
	networkKey   = "walletstore-network"
	walletPrefix = "wallet:"
	addrPrefix   = "addr:"
)

// errors
var (
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrNetworkMismatch = errors.New("wallet store belongs to another network")
	ErrInvalidName     = errors.New("invalid wallet name")
	ErrCorruptRecord   = errors.New("wallet record does not match its seed")
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// Record is a stored wallet
type Record struct {
	Name    string         `json:"name"`
	Network string         `json:"network"`
	Created int64          `json:"created"`
	Wallet  *wallet.Wallet `json:"wallet"`
}

// Store is a named wallet store bound to one network
type Store struct {
	db      leveldb.KeyValueStore
	network string
}

// Open opens or creates the store of network under dir
func Open(dir, network string) (*Store, error) {
	path := filepath.Join(dir, network)
	db, err := leveldb.New(path, 16, 16, false)
	if err != nil {
		return nil, fmt.Errorf("open wallet store %v: %w", path, err)
	}
	s, err := New(db, network)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Debug("open wallet store success", "path", path, "network", network)
	return s, nil
}

// New binds db to network. A fresh db records the network, an existing one must match.
func New(db leveldb.KeyValueStore, network string) (*Store, error) {
	val, err := db.Get([]byte(networkKey))
	switch {
	case err == nil:
		if string(val) != network {
			return nil, fmt.Errorf("%w: indb %v, want %v", ErrNetworkMismatch, string(val), network)
		}
	case leveldb.IsNotFoundErr(err):
		if err = db.Put([]byte(networkKey), []byte(network)); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &Store{db: db, network: network}, nil
}

// Network of the store
func (s *Store) Network() string {
	return s.network
}

func walletKey(name string) []byte {
	return []byte(walletPrefix + name)
}

// Save stores w under name, replacing any wallet of the same name.
// The record and its address index are written in one batch.
func (s *Store) Save(name string, w *wallet.Wallet) error {
	if !nameRegexp.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := json.Marshal(&Record{
		Name:    name,
		Network: s.network,
		Created: time.Now().Unix(),
		Wallet:  w,
	})
	if err != nil {
		return err
	}
	b := s.db.NewBatch()
	if old, err := s.get(name); err == nil && old.Wallet.ClassicAddress != w.ClassicAddress {
		_ = b.Delete(addrKey(old.Wallet.ClassicAddress))
	}
	_ = b.Put(walletKey(name), data)
	_ = b.Put(addrKey(w.ClassicAddress), []byte(name))
	if err = b.Write(); err != nil {
		log.Warn("save wallet failed", "name", name, "err", err)
		return err
	}
	log.Info("save wallet success", "name", name, "address", w.ClassicAddress)
	return nil
}

func addrKey(address string) []byte {
	return []byte(addrPrefix + address)
}

func (s *Store) get(name string) (*Record, error) {
	data, err := s.db.Get(walletKey(name))
	if err != nil {
		if leveldb.IsNotFoundErr(err) {
			return nil, fmt.Errorf("%w: %v", ErrWalletNotFound, name)
		}
		return nil, err
	}
	return decodeRecord(data)
}

func decodeRecord(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	if r.Wallet == nil {
		return nil, ErrCorruptRecord
	}
	return &r, nil
}

// Load returns the wallet stored under name, re-derived from its seed
func (s *Store) Load(name string) (*wallet.Wallet, error) {
	r, err := s.get(name)
	if err != nil {
		return nil, err
	}
	w, err := wallet.NewWallet(r.Wallet.Seed, r.Wallet.Sequence)
	if err != nil {
		return nil, err
	}
	if w.ClassicAddress != r.Wallet.ClassicAddress {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, name)
	}
	return w, nil
}

// Delete removes the wallet stored under name and its address index
func (s *Store) Delete(name string) error {
	key := walletKey(name)
	has, err := s.db.Has(key)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("%w: %v", ErrWalletNotFound, name)
	}
	b := s.db.NewBatch()
	_ = b.Delete(key)
	// an undecodable record still goes, only its index is left behind
	if r, err := s.get(name); err == nil {
		_ = b.Delete(addrKey(r.Wallet.ClassicAddress))
	}
	return b.Write()
}

// FindByAddress returns the name under which address is stored
func (s *Store) FindByAddress(address string) (string, error) {
	name, err := s.db.Get(addrKey(address))
	if err != nil {
		if leveldb.IsNotFoundErr(err) {
			return "", fmt.Errorf("%w: %v", ErrWalletNotFound, address)
		}
		return "", err
	}
	return string(name), nil
}

// List returns all records ordered by name
func (s *Store) List() ([]*Record, error) {
	var records []*Record
	iter := s.db.NewIterator([]byte(walletPrefix), nil)
	defer iter.Release()
	for iter.Next() {
		r, err := decodeRecord(iter.Value())
		if err != nil {
			log.Warn("skip bad wallet record", "key", string(iter.Key()), "err", err)
			continue
		}
		records = append(records, r)
	}
	return records, iter.Error()
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
