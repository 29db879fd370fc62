package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/port"
	"billbook/internal/service"
	"billbook/mocks"
)

var fixedNow = time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC)

func fixedClock() service.Clock {
	return func() time.Time { return fixedNow }
}

// newStore opens a store over a mock repository that accepts every save.
func newStore(t *testing.T, doc *domain.Ledger) (*ledger.Store, *mocks.MockLedgerRepository) {
	t.Helper()
	if doc == nil {
		doc = domain.NewLedger()
	}
	repo := new(mocks.MockLedgerRepository)
	repo.On("Load", mock.Anything).Return(&port.LoadResult{Ledger: doc, Found: true}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()
	store, err := ledger.Open(context.Background(), repo)
	require.NoError(t, err)
	return store, repo
}
