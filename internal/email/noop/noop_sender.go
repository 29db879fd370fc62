package noop

import (
	"context"

	"billbook/internal/logger"
	"billbook/internal/port"
)

type noopSender struct{}

// NewNoopSender creates an EmailSender that only logs the message.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceLink(_ context.Context, msg *port.InvoiceLinkEmail) error {
	log := logger.WithComponent("email")
	log.Info().
		Str("to", msg.ToEmail).
		Str("invoice_number", msg.InvoiceNumber).
		Str("link", msg.Link).
		Msg("[NOOP EMAIL] invoice link")
	return nil
}
