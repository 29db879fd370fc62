package port

import "context"

// InvoiceLinkEmail is a message pointing a customer at an archived invoice.
type InvoiceLinkEmail struct {
	ToEmail       string
	CustomerName  string
	InvoiceNumber string
	TotalAmount   string
	Link          string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendInvoiceLink(ctx context.Context, msg *InvoiceLinkEmail) error
}
