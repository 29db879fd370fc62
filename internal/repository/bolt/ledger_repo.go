// Package bolt keeps the ledger document under one key of a bbolt database.
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/port"
)

var bucketName = []byte("ledger")

// LedgerRepository stores the document as a single value.
type LedgerRepository struct {
	db  *bolt.DB
	key []byte
}

// Open opens (or creates) the database at path.
func Open(path, storageKey string) (*LedgerRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating bolt directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger bucket: %w", err)
	}
	return &LedgerRepository{db: db, key: []byte(storageKey)}, nil
}

func (r *LedgerRepository) Load(_ context.Context) (*port.LoadResult, error) {
	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(r.key); v != nil {
			// v is only valid inside the transaction
			raw = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	if raw == nil {
		return &port.LoadResult{Ledger: domain.NewLedger()}, nil
	}
	doc, recovered := ledger.Decode(raw)
	return &port.LoadResult{Ledger: doc, Found: true, Recovered: recovered}, nil
}

func (r *LedgerRepository) Save(_ context.Context, doc *domain.Ledger) error {
	data, err := ledger.Encode(doc)
	if err != nil {
		return err
	}
	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(r.key, data)
	})
	if err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// Ping checks the database is still open.
func (r *LedgerRepository) Ping(_ context.Context) error {
	return r.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketName) == nil {
			return domain.ErrStorageUnavailable
		}
		return nil
	})
}

// Close releases the database file lock.
func (r *LedgerRepository) Close() error {
	return r.db.Close()
}
