package port

import (
	"context"

	"billbook/internal/domain"
)

// LoadResult is what a ledger backend found in its storage slot.
type LoadResult struct {
	Ledger *domain.Ledger
	// Found is false when the slot has never been written.
	Found bool
	// Recovered is true when the slot held content that could not be read
	// as a ledger document, in whole or in one of its collections, and the
	// unreadable part was replaced with an empty one.
	Recovered bool
}

// LedgerRepository persists the single ledger document under one key.
// Load never fails because of the slot's content, only because the backing
// store is unreachable.
type LedgerRepository interface {
	Load(ctx context.Context) (*LoadResult, error)
	Save(ctx context.Context, ledger *domain.Ledger) error
}

// Pinger is implemented by backends that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
