// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// badgerKeyPrefix namespaces cache keys inside the database.
const badgerKeyPrefix = "lookup:"

// Badger is a persistent Store backed by BadgerDB. Entry expiry uses
// BadgerDB's native TTL, so expired keys are invisible to reads and are
// reclaimed by compaction and value log GC.
type Badger struct {
	db  *badger.DB
	ttl time.Duration
}

var _ Store = (*Badger)(nil)

// OpenBadger opens (or creates) a BadgerDB directory at path.
func OpenBadger(path string, ttl time.Duration) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for lookup cache: %w", err)
	}
	return NewBadgerFromDB(db, ttl), nil
}

// NewBadgerFromDB wraps an open database. Close closes db.
func NewBadgerFromDB(db *badger.DB, ttl time.Duration) *Badger {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Badger{db: db, ttl: ttl}
}

// Get implements Store.
func (b *Badger) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cache entry: %w", err)
	}
	return value, true, nil
}

// Set implements Store.
func (b *Badger) Set(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(badgerKeyPrefix+key), value).WithTTL(b.ttl)
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set cache entry: %w", err)
		}
		return nil
	})
}

// Delete implements Store.
func (b *Badger) Delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(badgerKeyPrefix + key))
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete cache entry: %w", err)
		}
		return nil
	})
}

// Len implements Store.
func (b *Badger) Len() int {
	n := 0
	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgerKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n
}

// GC implements Store. It runs value log GC until nothing is rewritten.
func (b *Badger) GC(ctx context.Context) (int, error) {
	if b.db.IsClosed() {
		return 0, ErrClosed
	}
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		err := b.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) || errors.Is(err, badger.ErrGCInMemoryMode) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("value log gc: %w", err)
		}
	}
	return b.Len(), nil
}

// Backend implements Store.
func (b *Badger) Backend() string {
	return string(BackendBadger)
}

// Close implements Store.
func (b *Badger) Close() error {
	return b.db.Close()
}
