package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/service"
)

// MockSummaryService is a mock implementation of service.SummaryService.
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Snapshot(ctx context.Context) domain.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(domain.Snapshot)
}

func (m *MockSummaryService) Status(ctx context.Context) domain.LedgerStatus {
	args := m.Called(ctx)
	return args.Get(0).(domain.LedgerStatus)
}

func (m *MockSummaryService) Catalog() service.Catalog {
	args := m.Called()
	return args.Get(0).(service.Catalog)
}

func (m *MockSummaryService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
