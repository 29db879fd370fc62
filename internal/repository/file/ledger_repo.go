// Package file keeps the ledger document in a single JSON file.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/port"
)

type ledgerRepository struct {
	path string
}

// NewLedgerRepository stores the document at path. The parent directory is
// created on first save.
func NewLedgerRepository(path string) port.LedgerRepository {
	return &ledgerRepository{path: path}
}

func (r *ledgerRepository) Load(_ context.Context) (*port.LoadResult, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &port.LoadResult{Ledger: domain.NewLedger()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger file: %w", err)
	}
	doc, recovered := ledger.Decode(raw)
	return &port.LoadResult{Ledger: doc, Found: true, Recovered: recovered}, nil
}

// Save writes to a temporary file next to the target and renames it into
// place, so readers never observe a partial document.
func (r *ledgerRepository) Save(_ context.Context, doc *domain.Ledger) error {
	data, err := ledger.Encode(doc)
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("creating temp ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replacing ledger file: %w", err)
	}
	return nil
}

// Ping reports whether the ledger directory is reachable.
func (r *ledgerRepository) Ping(_ context.Context) error {
	dir := filepath.Dir(r.path)
	if _, err := os.Stat(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
