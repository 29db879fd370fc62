package service

import (
	"context"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/port"
)

// Catalog lists the fixed choices offered by the bill and expense forms.
type Catalog struct {
	Products          []domain.Product       `json:"products"`
	ExpenseCategories []string               `json:"expenseCategories"`
	PaymentMethods    []string               `json:"paymentMethods"`
	PaymentStatuses   []domain.PaymentStatus `json:"paymentStatuses"`
}

// SummaryService defines the dashboard and ledger status contract.
type SummaryService interface {
	Snapshot(ctx context.Context) domain.Snapshot
	Status(ctx context.Context) domain.LedgerStatus
	Catalog() Catalog
	Ping(ctx context.Context) error
}

type summaryService struct {
	store      *ledger.Store
	repo       port.LedgerRepository
	driver     string
	storageKey string
}

// NewSummaryService creates a new SummaryService implementation. repo is
// probed by Ping when it implements port.Pinger.
func NewSummaryService(store *ledger.Store, repo port.LedgerRepository, driver, storageKey string) SummaryService {
	return &summaryService{store: store, repo: repo, driver: driver, storageKey: storageKey}
}

func (s *summaryService) Snapshot(_ context.Context) domain.Snapshot {
	return ledger.SnapshotOf(s.store.Snapshot())
}

func (s *summaryService) Status(_ context.Context) domain.LedgerStatus {
	doc := s.store.Snapshot()
	return domain.LedgerStatus{
		Recovered:    s.store.Recovered(),
		Found:        s.store.Found(),
		StorageKey:   s.storageKey,
		Driver:       s.driver,
		BillCount:    len(doc.Bills),
		ExpenseCount: len(doc.Expenses),
	}
}

func (s *summaryService) Catalog() Catalog {
	return Catalog{
		Products:          domain.Products,
		ExpenseCategories: domain.ExpenseCategories,
		PaymentMethods:    domain.PaymentMethods,
		PaymentStatuses:   domain.PaymentStatuses,
	}
}

func (s *summaryService) Ping(ctx context.Context) error {
	if p, ok := s.repo.(port.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
