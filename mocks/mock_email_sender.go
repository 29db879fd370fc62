package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billbook/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceLink(ctx context.Context, msg *port.InvoiceLinkEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
