/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ledger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const petBucket = "pets"

var errBucketMissing = errors.New("pet bucket missing")

type boltLedger struct {
	db *bolt.DB
}

// NewBolt opens or creates a ledger file. The file stays locked until Close.
func NewBolt(path string) (Ledger, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(petBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing ledger bucket: %w", err)
	}

	return &boltLedger{
		db: db,
	}, nil
}

// Record stores the ID with the time it was created at.
func (b *boltLedger) Record(_ context.Context, petID string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(petBucket))
		if bucket == nil {
			return errBucketMissing
		}

		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(time.Now().Unix()))

		return bucket.Put([]byte(petID), value)
	})
}

func (b *boltLedger) Forget(_ context.Context, petID string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(petBucket))
		if bucket == nil {
			return errBucketMissing
		}

		return bucket.Delete([]byte(petID))
	})
}

// List returns recorded IDs in key order.
func (b *boltLedger) List(_ context.Context) ([]string, error) {
	var ids []string

	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(petBucket))
		if bucket == nil {
			return errBucketMissing
		}

		return bucket.ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	return ids, nil
}

func (b *boltLedger) Close() error {
	if b.db == nil {
		return nil
	}

	return b.db.Close()
}
