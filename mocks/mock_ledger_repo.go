package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/port"
)

// MockLedgerRepository is a mock implementation of port.LedgerRepository.
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Load(ctx context.Context) (*port.LoadResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.LoadResult), args.Error(1)
}

func (m *MockLedgerRepository) Save(ctx context.Context, doc *domain.Ledger) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
