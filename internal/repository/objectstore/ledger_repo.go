// Package objectstore keeps the ledger document as one JSON object in an
// S3 bucket.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/port"
)

// LedgerRepository implements port.LedgerRepository and port.Pinger.
type LedgerRepository struct {
	storage port.ObjectStorage
	key     string
}

// NewLedgerRepository stores the document at <prefix>/<storageKey>.json.
func NewLedgerRepository(storage port.ObjectStorage, prefix, storageKey string) *LedgerRepository {
	return &LedgerRepository{
		storage: storage,
		key:     ObjectKey(prefix, storageKey),
	}
}

// ObjectKey returns the object key for a storage key.
func ObjectKey(prefix, storageKey string) string {
	return path.Join(prefix, storageKey+".json")
}

func (r *LedgerRepository) Load(ctx context.Context) (*port.LoadResult, error) {
	raw, err := r.storage.Get(ctx, r.key)
	if errors.Is(err, domain.ErrObjectNotFound) {
		return &port.LoadResult{Ledger: domain.NewLedger()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("downloading ledger: %w", err)
	}
	doc, recovered := ledger.Decode(raw)
	return &port.LoadResult{Ledger: doc, Found: true, Recovered: recovered}, nil
}

func (r *LedgerRepository) Save(ctx context.Context, doc *domain.Ledger) error {
	data, err := ledger.Encode(doc)
	if err != nil {
		return err
	}
	err = r.storage.Put(ctx, port.PutObjectInput{
		Key:         r.key,
		Body:        bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("uploading ledger: %w", err)
	}
	return nil
}

// Ping checks the bucket.
func (r *LedgerRepository) Ping(ctx context.Context) error {
	return r.storage.Ping(ctx)
}
