package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/port"
	"billbook/mocks"
)

func openStore(t *testing.T, doc *domain.Ledger) (*ledger.Store, *mocks.MockLedgerRepository) {
	t.Helper()
	repo := new(mocks.MockLedgerRepository)
	repo.On("Load", mock.Anything).Return(&port.LoadResult{Ledger: doc, Found: true}, nil).Once()
	store, err := ledger.Open(context.Background(), repo)
	require.NoError(t, err)
	return store, repo
}

func TestOpen_LoadError(t *testing.T) {
	repo := new(mocks.MockLedgerRepository)
	repo.On("Load", mock.Anything).Return(nil, errors.New("disk on fire"))

	store, err := ledger.Open(context.Background(), repo)
	assert.Nil(t, store)
	assert.ErrorContains(t, err, "disk on fire")
}

func TestOpen_RecoveredDocument(t *testing.T) {
	repo := new(mocks.MockLedgerRepository)
	repo.On("Load", mock.Anything).Return(&port.LoadResult{Ledger: &domain.Ledger{}, Found: true, Recovered: true}, nil)

	store, err := ledger.Open(context.Background(), repo)
	require.NoError(t, err)
	assert.True(t, store.Recovered())
	assert.True(t, store.Found())

	snap := store.Snapshot()
	assert.NotNil(t, snap.Bills)
	assert.NotNil(t, snap.Expenses)
}

func TestStore_UpsertBill_SavesWholeDocument(t *testing.T) {
	store, repo := openStore(t, &domain.Ledger{
		Bills:    []domain.Bill{{ID: "b1", Quantity: 1}},
		Expenses: []domain.Expense{{ID: "e1", Amount: 10}},
	})

	repo.On("Save", mock.Anything, mock.MatchedBy(func(doc *domain.Ledger) bool {
		return len(doc.Bills) == 2 && doc.Bills[1].ID == "b2" && len(doc.Expenses) == 1
	})).Return(nil).Once()

	require.NoError(t, store.UpsertBill(context.Background(), domain.Bill{ID: "b2", Quantity: 5}))

	snap := store.Snapshot()
	assert.Len(t, snap.Bills, 2)
	repo.AssertExpectations(t)
}

func TestStore_FailedSaveLeavesStateUnchanged(t *testing.T) {
	store, repo := openStore(t, &domain.Ledger{Bills: []domain.Bill{{ID: "b1", CustomerName: "A"}}})
	repo.On("Save", mock.Anything, mock.Anything).Return(domain.ErrStorageUnavailable)

	err := store.UpsertBill(context.Background(), domain.Bill{ID: "b1", CustomerName: "B"})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	b, err := store.Bill("b1")
	require.NoError(t, err)
	assert.Equal(t, "A", b.CustomerName)
}

func TestStore_RemoveUnknownIDDoesNotSave(t *testing.T) {
	store, repo := openStore(t, &domain.Ledger{Expenses: []domain.Expense{{ID: "e1"}}})

	require.NoError(t, store.RemoveExpense(context.Background(), "missing"))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.Len(t, store.Snapshot().Expenses, 1)
}

func TestStore_RemoveAndClear(t *testing.T) {
	store, repo := openStore(t, &domain.Ledger{
		Bills:    []domain.Bill{{ID: "b1"}, {ID: "b2"}},
		Expenses: []domain.Expense{{ID: "e1"}},
	})
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	ctx := context.Background()
	require.NoError(t, store.Remove(ctx, domain.CollectionBills, "b1"))
	_, err := store.Bill("b1")
	assert.ErrorIs(t, err, domain.ErrBillNotFound)

	require.NoError(t, store.Clear(ctx, domain.CollectionExpenses))
	snap := store.Snapshot()
	assert.Len(t, snap.Bills, 1)
	assert.Empty(t, snap.Expenses)
	assert.NotNil(t, snap.Expenses)
}

func TestStore_GenericUpsert(t *testing.T) {
	store, repo := openStore(t, domain.NewLedger())
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	ctx := context.Background()
	require.NoError(t, store.Upsert(ctx, domain.CollectionExpenses, domain.Expense{ID: "e1", Amount: 5}))

	e, err := store.Expense("e1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, e.Amount)

	err = store.Upsert(ctx, domain.CollectionBills, domain.Expense{ID: "e2"})
	assert.ErrorIs(t, err, domain.ErrUnknownCollection)

	err = store.Clear(ctx, domain.Collection("invoices"))
	assert.ErrorIs(t, err, domain.ErrUnknownCollection)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store, _ := openStore(t, &domain.Ledger{Bills: []domain.Bill{{ID: "b1", CustomerName: "A"}}})

	snap := store.Snapshot()
	snap.Bills[0].CustomerName = "changed"

	b, err := store.Bill("b1")
	require.NoError(t, err)
	assert.Equal(t, "A", b.CustomerName)
}

func TestStore_UpdateBill(t *testing.T) {
	store, repo := openStore(t, &domain.Ledger{Bills: []domain.Bill{{ID: "b1", CustomerName: "A"}, {ID: "b2"}}})
	repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	ctx := context.Background()
	got, err := store.UpdateBill(ctx, "b1", func(b *domain.Bill) {
		b.CustomerName = "B"
		b.ID = "renamed"
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, "B", got.CustomerName)

	snap := store.Snapshot()
	require.Len(t, snap.Bills, 2)
	assert.Equal(t, "B", snap.Bills[0].CustomerName)

	_, err = store.UpdateBill(ctx, "missing", func(b *domain.Bill) {})
	assert.ErrorIs(t, err, domain.ErrBillNotFound)
	assert.Len(t, store.Snapshot().Bills, 2)
	repo.AssertExpectations(t)
}

func TestStore_UpdateExpense_RemovedRecordIsNotRecreated(t *testing.T) {
	store, repo := openStore(t, &domain.Ledger{Expenses: []domain.Expense{{ID: "e1", Amount: 10}}})
	repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	ctx := context.Background()
	require.NoError(t, store.RemoveExpense(ctx, "e1"))

	_, err := store.UpdateExpense(ctx, "e1", func(e *domain.Expense) { e.Amount = 20 })
	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
	assert.Empty(t, store.Snapshot().Expenses)
	repo.AssertExpectations(t)
}

func TestStore_UpdateBill_SaveFailure(t *testing.T) {
	store, repo := openStore(t, &domain.Ledger{Bills: []domain.Bill{{ID: "b1", CustomerName: "A"}}})
	repo.On("Save", mock.Anything, mock.Anything).Return(domain.ErrStorageUnavailable)

	_, err := store.UpdateBill(context.Background(), "b1", func(b *domain.Bill) { b.CustomerName = "B" })
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	b, err := store.Bill("b1")
	require.NoError(t, err)
	assert.Equal(t, "A", b.CustomerName)
}
