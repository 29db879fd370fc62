package ledger

import (
	"context"
	"fmt"
	"sync"

	"billbook/internal/domain"
	"billbook/internal/logger"
	"billbook/internal/port"
)

// Store holds the ledger document loaded from a repository. Every mutation is
// applied to a copy, written back in full, and only then made visible, so a
// failed save leaves the in-memory state unchanged.
type Store struct {
	repo port.LedgerRepository

	mu        sync.RWMutex
	doc       *domain.Ledger
	found     bool
	recovered bool
}

// Open loads the document once from repo.
func Open(ctx context.Context, repo port.LedgerRepository) (*Store, error) {
	res, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	doc := res.Ledger
	if doc == nil {
		doc = domain.NewLedger()
	}
	doc.Normalize()

	if res.Recovered {
		log := logger.WithComponent("ledger")
		log.Warn().Int("bills", len(doc.Bills)).Int("expenses", len(doc.Expenses)).Msg("stored ledger document was partly unreadable; unreadable parts reset to empty")
	}

	return &Store{
		repo:      repo,
		doc:       doc,
		found:     res.Found,
		recovered: res.Recovered,
	}, nil
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() *domain.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Recovered reports whether some or all of the stored copy was unreadable
// and reset to empty.
func (s *Store) Recovered() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recovered
}

// Found reports whether the storage slot existed at load time.
func (s *Store) Found() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.found
}

// mutate applies fn to a copy of the document and persists it. fn returns
// false when it made no change; nothing is saved in that case.
func (s *Store) mutate(ctx context.Context, fn func(doc *domain.Ledger) bool) error {
	return s.mutateE(ctx, func(doc *domain.Ledger) (bool, error) {
		return fn(doc), nil
	})
}

// mutateE is mutate for changes that can be refused. An error from fn
// aborts the mutation without saving.
func (s *Store) mutateE(ctx context.Context, fn func(doc *domain.Ledger) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	changed, err := fn(next)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	s.doc = next
	s.found = true
	return nil
}

// Upsert stores rec in the named collection.
func (s *Store) Upsert(ctx context.Context, collection domain.Collection, rec domain.Record) error {
	switch collection {
	case domain.CollectionBills:
		b, ok := rec.(domain.Bill)
		if !ok {
			return fmt.Errorf("%w: %T is not a bill", domain.ErrUnknownCollection, rec)
		}
		return s.UpsertBill(ctx, b)
	case domain.CollectionExpenses:
		e, ok := rec.(domain.Expense)
		if !ok {
			return fmt.Errorf("%w: %T is not an expense", domain.ErrUnknownCollection, rec)
		}
		return s.UpsertExpense(ctx, e)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}
}

// Remove deletes the record with id from the named collection.
func (s *Store) Remove(ctx context.Context, collection domain.Collection, id string) error {
	switch collection {
	case domain.CollectionBills:
		return s.RemoveBill(ctx, id)
	case domain.CollectionExpenses:
		return s.RemoveExpense(ctx, id)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}
}

// UpsertBill replaces or appends b.
func (s *Store) UpsertBill(ctx context.Context, b domain.Bill) error {
	return s.mutate(ctx, func(doc *domain.Ledger) bool {
		doc.Bills = Upsert(doc.Bills, b)
		return true
	})
}

// UpsertExpense replaces or appends e.
func (s *Store) UpsertExpense(ctx context.Context, e domain.Expense) error {
	return s.mutate(ctx, func(doc *domain.Ledger) bool {
		doc.Expenses = Upsert(doc.Expenses, e)
		return true
	})
}

// UpdateBill applies fn to the stored bill with id and saves the result. The
// lookup and the write happen under one lock, so a bill deleted concurrently
// is reported as ErrBillNotFound rather than recreated. fn must not change
// the id and must not call back into the store.
func (s *Store) UpdateBill(ctx context.Context, id string, fn func(b *domain.Bill)) (domain.Bill, error) {
	var updated domain.Bill
	err := s.mutateE(ctx, func(doc *domain.Ledger) (bool, error) {
		b, ok := Find(doc.Bills, id)
		if !ok {
			return false, domain.ErrBillNotFound
		}
		fn(&b)
		b.ID = id
		doc.Bills, _ = Replace(doc.Bills, b)
		updated = b
		return true, nil
	})
	return updated, err
}

// UpdateExpense is UpdateBill for expenses.
func (s *Store) UpdateExpense(ctx context.Context, id string, fn func(e *domain.Expense)) (domain.Expense, error) {
	var updated domain.Expense
	err := s.mutateE(ctx, func(doc *domain.Ledger) (bool, error) {
		e, ok := Find(doc.Expenses, id)
		if !ok {
			return false, domain.ErrExpenseNotFound
		}
		fn(&e)
		e.ID = id
		doc.Expenses, _ = Replace(doc.Expenses, e)
		updated = e
		return true, nil
	})
	return updated, err
}

// RemoveBill deletes the bill with id; an unknown id is a no-op.
func (s *Store) RemoveBill(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *domain.Ledger) bool {
		var removed bool
		doc.Bills, removed = Remove(doc.Bills, id)
		return removed
	})
}

// RemoveExpense deletes the expense with id; an unknown id is a no-op.
func (s *Store) RemoveExpense(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *domain.Ledger) bool {
		var removed bool
		doc.Expenses, removed = Remove(doc.Expenses, id)
		return removed
	})
}

// Clear empties the named collection.
func (s *Store) Clear(ctx context.Context, collection domain.Collection) error {
	switch collection {
	case domain.CollectionBills:
		return s.mutate(ctx, func(doc *domain.Ledger) bool {
			doc.Bills = []domain.Bill{}
			return true
		})
	case domain.CollectionExpenses:
		return s.mutate(ctx, func(doc *domain.Ledger) bool {
			doc.Expenses = []domain.Expense{}
			return true
		})
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}
}

// Bill returns the bill with id.
func (s *Store) Bill(id string) (domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := Find(s.doc.Bills, id)
	if !ok {
		return domain.Bill{}, domain.ErrBillNotFound
	}
	return b, nil
}

// Expense returns the expense with id.
func (s *Store) Expense(id string) (domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := Find(s.doc.Expenses, id)
	if !ok {
		return domain.Expense{}, domain.ErrExpenseNotFound
	}
	return e, nil
}

// ClearBills empties the bills collection.
func (s *Store) ClearBills(ctx context.Context) error {
	return s.Clear(ctx, domain.CollectionBills)
}

// ClearExpenses empties the expenses collection.
func (s *Store) ClearExpenses(ctx context.Context) error {
	return s.Clear(ctx, domain.CollectionExpenses)
}
