package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billbook/internal/ledger"
	"billbook/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) BillsCSV(ctx context.Context, q ledger.Query, bom bool) (*service.Attachment, error) {
	args := m.Called(ctx, q, bom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Attachment), args.Error(1)
}

func (m *MockExportService) ExpensesCSV(ctx context.Context, q ledger.Query, bom bool) (*service.Attachment, error) {
	args := m.Called(ctx, q, bom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Attachment), args.Error(1)
}

func (m *MockExportService) Workbook(ctx context.Context) (*service.Attachment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Attachment), args.Error(1)
}
