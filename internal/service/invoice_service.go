package service

import (
	"bytes"
	"context"
	"fmt"
	"net/mail"
	"path"
	"strings"
	"time"

	"billbook/internal/domain"
	"billbook/internal/invoice"
	"billbook/internal/ledger"
	"billbook/internal/logger"
	"billbook/internal/money"
	"billbook/internal/port"
)

// PDFContentType is the MIME type of rendered invoices.
const PDFContentType = "application/pdf"

// InvoiceConfig carries the seller profile, wording and tax policy printed
// on invoices, and where shared invoices are archived.
type InvoiceConfig struct {
	Company       domain.Company
	Settings      domain.InvoiceSettings
	Tax           invoice.TaxPolicy
	ArchivePrefix string
	LinkExpiry    time.Duration
}

// RenderedInvoice is a generated PDF ready for download.
type RenderedInvoice struct {
	InvoiceNumber string
	Filename      string
	ContentType   string
	Data          []byte
}

// ShareResult describes an archived invoice.
type ShareResult struct {
	BillID        string    `json:"billId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	ObjectKey     string    `json:"objectKey"`
	Link          string    `json:"link"`
	ExpiresAt     time.Time `json:"expiresAt"`
	EmailedTo     string    `json:"emailedTo,omitempty"`
}

// InvoiceService defines the invoice document contract.
type InvoiceService interface {
	Groups(ctx context.Context) ([]domain.InvoiceGroup, error)
	Document(ctx context.Context, billID string) (*invoice.Document, error)
	RenderPDF(ctx context.Context, billID string) (*RenderedInvoice, error)
	Share(ctx context.Context, billID, email string) (*ShareResult, error)
}

type invoiceService struct {
	store   *ledger.Store
	cfg     InvoiceConfig
	storage port.ObjectStorage
	email   port.EmailSender
	clock   Clock
}

// NewInvoiceService creates a new InvoiceService implementation. storage may
// be nil, in which case Share reports ErrArchiveUnavailable.
func NewInvoiceService(
	store *ledger.Store,
	cfg InvoiceConfig,
	storage port.ObjectStorage,
	email port.EmailSender,
	clock Clock,
) InvoiceService {
	return &invoiceService{
		store:   store,
		cfg:     cfg,
		storage: storage,
		email:   email,
		clock:   clock,
	}
}

func (s *invoiceService) Groups(_ context.Context) ([]domain.InvoiceGroup, error) {
	return ledger.GroupInvoices(s.store.Snapshot().Bills), nil
}

func (s *invoiceService) Document(_ context.Context, billID string) (*invoice.Document, error) {
	b, err := s.store.Bill(billID)
	if err != nil {
		return nil, err
	}
	doc := invoice.BuildDocument(b, s.cfg.Company, s.cfg.Settings, s.cfg.Tax)
	return &doc, nil
}

func (s *invoiceService) RenderPDF(ctx context.Context, billID string) (*RenderedInvoice, error) {
	doc, err := s.Document(ctx, billID)
	if err != nil {
		return nil, err
	}
	data, err := invoice.Render(invoice.Compose(*doc))
	if err != nil {
		return nil, err
	}
	return &RenderedInvoice{
		InvoiceNumber: doc.InvoiceNumber,
		Filename:      invoice.Filename(doc.InvoiceNumber),
		ContentType:   PDFContentType,
		Data:          data,
	}, nil
}

// Share archives the rendered PDF, records the presigned link as the bill's
// invoice link and, when email is non-empty, mails the link to it.
func (s *invoiceService) Share(ctx context.Context, billID, email string) (*ShareResult, error) {
	if s.storage == nil {
		return nil, domain.ErrArchiveUnavailable
	}
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domain.ErrInvalidEmail
		}
	}

	rendered, err := s.RenderPDF(ctx, billID)
	if err != nil {
		return nil, err
	}

	key := path.Join(s.cfg.ArchivePrefix, billID, rendered.Filename)
	err = s.storage.Put(ctx, port.PutObjectInput{
		Key:                key,
		Body:               bytes.NewReader(rendered.Data),
		Size:               int64(len(rendered.Data)),
		ContentType:        PDFContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", rendered.Filename),
	})
	if err != nil {
		return nil, fmt.Errorf("archiving invoice: %w", err)
	}

	link, err := s.linkArchived(ctx, billID, key)
	if err != nil {
		s.discard(ctx, key)
		return nil, err
	}
	b, err := s.store.Bill(billID)
	if err != nil {
		return nil, err
	}

	result := &ShareResult{
		BillID:        billID,
		InvoiceNumber: rendered.InvoiceNumber,
		ObjectKey:     key,
		Link:          link,
		ExpiresAt:     s.clock.now().Add(s.cfg.LinkExpiry).UTC(),
	}

	if email != "" && s.email != nil {
		doc := invoice.BuildDocument(b, s.cfg.Company, s.cfg.Settings, s.cfg.Tax)
		err := s.email.SendInvoiceLink(ctx, &port.InvoiceLinkEmail{
			ToEmail:       email,
			CustomerName:  b.CustomerName,
			InvoiceNumber: doc.InvoiceNumber,
			TotalAmount:   money.Format(doc.Tax.TotalAmount),
			Link:          link,
		})
		if err != nil {
			// The archive and link are already saved; report the failure
			// without undoing them.
			log := logger.WithComponent("invoice")
			log.Error().Err(err).Str("bill_id", billID).Msg("sending invoice email failed")
			return result, fmt.Errorf("sending invoice email: %w", err)
		}
		result.EmailedTo = email
	}
	return result, nil
}

// linkArchived presigns key and stores the link on the bill.
func (s *invoiceService) linkArchived(ctx context.Context, billID, key string) (string, error) {
	link, err := s.storage.PresignGet(ctx, key, s.cfg.LinkExpiry)
	if err != nil {
		return "", fmt.Errorf("presigning invoice: %w", err)
	}
	if _, err := s.store.UpdateBill(ctx, billID, func(b *domain.Bill) { b.InvoiceLink = link }); err != nil {
		return "", err
	}
	return link, nil
}

// discard removes an archived PDF whose link could not be recorded.
func (s *invoiceService) discard(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		log := logger.WithComponent("invoice")
		log.Warn().Err(err).Str("key", key).Msg("removing unlinked invoice archive failed")
	}
}
