package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/invoice"
	"billbook/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Groups(ctx context.Context) ([]domain.InvoiceGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceGroup), args.Error(1)
}

func (m *MockInvoiceService) Document(ctx context.Context, billID string) (*invoice.Document, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Document), args.Error(1)
}

func (m *MockInvoiceService) RenderPDF(ctx context.Context, billID string) (*service.RenderedInvoice, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedInvoice), args.Error(1)
}

func (m *MockInvoiceService) Share(ctx context.Context, billID, email string) (*service.ShareResult, error) {
	args := m.Called(ctx, billID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShareResult), args.Error(1)
}
