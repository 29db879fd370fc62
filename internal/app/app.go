// Package app assembles the ledger services from configuration. Both the
// HTTP server and the ledgerctl CLI start from here.
package app

import (
	"context"
	"fmt"
	"time"

	"billbook/internal/config"
	"billbook/internal/email/noop"
	"billbook/internal/email/ses"
	"billbook/internal/email/smtp"
	"billbook/internal/ledger"
	"billbook/internal/logger"
	"billbook/internal/port"
	"billbook/internal/repository"
	"billbook/internal/service"
	s3storage "billbook/internal/storage/s3"
)

// App holds the opened store and the services built on it.
type App struct {
	Config  *config.Config
	Backend *repository.Backend
	Store   *ledger.Store

	Bills    service.BillService
	Expenses service.ExpenseService
	Invoices service.InvoiceService
	Exports  service.ExportService
	Summary  service.SummaryService
	Imports  service.ImportService
}

// New opens the configured store and wires the services. Object storage is
// created only when an S3 bucket is configured.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	var storage port.ObjectStorage
	if cfg.S3.Enabled() {
		s3Client, err := s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("initializing S3 client: %w", err)
		}
		storage = s3Client
	}

	sender, err := newEmailSender(&cfg.Email)
	if err != nil {
		return nil, err
	}

	backend, err := repository.New(cfg, storage)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}

	store, err := ledger.Open(ctx, backend.Repo)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	log := logger.WithComponent("app")
	log.Info().
		Str("driver", backend.Driver).
		Str("storage_key", cfg.Store.StorageKey).
		Bool("found", store.Found()).
		Bool("recovered", store.Recovered()).
		Bool("archive", storage != nil).
		Msg("ledger opened")

	var clock service.Clock
	bills := service.NewBillService(store, clock)
	return &App{
		Config:   cfg,
		Backend:  backend,
		Store:    store,
		Bills:    bills,
		Expenses: service.NewExpenseService(store, clock),
		Invoices: service.NewInvoiceService(store, service.InvoiceConfig{
			Company:       cfg.Company.Profile(),
			Settings:      cfg.Invoice.Settings(),
			Tax:           cfg.Tax.Policy(),
			ArchivePrefix: cfg.S3.ArchivePrefix,
			LinkExpiry:    time.Duration(cfg.S3.PresignExpiry) * time.Second,
		}, storage, sender, clock),
		Exports: service.NewExportService(store, clock),
		Summary: service.NewSummaryService(store, backend.Repo, backend.Driver, cfg.Store.StorageKey),
		Imports: service.NewImportService(bills),
	}, nil
}

// Close releases the store backend.
func (a *App) Close() error {
	return a.Backend.Close()
}

func newEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		sender, err := ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
		if err != nil {
			return nil, fmt.Errorf("initializing SES sender: %w", err)
		}
		return sender, nil
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("email provider smtp requires a host")
		}
		return smtp.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword,
			cfg.FromAddress, cfg.FromName), nil
	case "", "noop":
		return noop.NewNoopSender(), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
