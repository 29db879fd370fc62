// Package repository selects the ledger storage backend from configuration.
package repository

import (
	"fmt"

	"billbook/internal/config"
	"billbook/internal/port"
	"billbook/internal/repository/bolt"
	"billbook/internal/repository/file"
	"billbook/internal/repository/objectstore"
	"billbook/internal/repository/postgres"
)

// Backend is an opened ledger repository together with its cleanup.
type Backend struct {
	Repo   port.LedgerRepository
	Driver string
	Close  func() error
}

// New opens the backend named by cfg.Store.Driver. storage is required only
// by the s3 driver.
func New(cfg *config.Config, storage port.ObjectStorage) (*Backend, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case config.DriverFile:
		return &Backend{Repo: file.NewLedgerRepository(cfg.Store.FilePath), Driver: config.DriverFile, Close: noop}, nil

	case config.DriverBolt:
		repo, err := bolt.Open(cfg.Store.BoltPath, cfg.Store.StorageKey)
		if err != nil {
			return nil, err
		}
		return &Backend{Repo: repo, Driver: config.DriverBolt, Close: repo.Close}, nil

	case config.DriverPostgres:
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, err
		}
		return &Backend{Repo: postgres.NewLedgerRepo(db, cfg.Store.StorageKey), Driver: config.DriverPostgres, Close: db.Close}, nil

	case config.DriverS3:
		if storage == nil {
			return nil, fmt.Errorf("store driver %q requires object storage", config.DriverS3)
		}
		repo := objectstore.NewLedgerRepository(storage, cfg.S3.LedgerPrefix, cfg.Store.StorageKey)
		return &Backend{Repo: repo, Driver: config.DriverS3, Close: noop}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
