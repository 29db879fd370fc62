package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"billbook/internal/domain"
	"billbook/internal/invoice"
	"billbook/internal/ledger"
	"billbook/internal/money"
)

// BillInput is the bill form state. Numeric fields accept numbers or
// numeric strings and are coerced with money.ToNumber.
type BillInput struct {
	Date          string `json:"date"`
	CustomerName  string `json:"customerName"`
	ProductID     string `json:"productId"`
	Quantity      any    `json:"quantity"`
	UnitPrice     any    `json:"unitPrice"`
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceLink   string `json:"invoiceLink"`
	Notes         string `json:"notes"`
	PaymentStatus string `json:"paymentStatus"`

	Freight            any    `json:"freight"`
	VehicleNo          string `json:"vehicleNo"`
	ItemCode           string `json:"itemCode"`
	Description        string `json:"description"`
	HSN                string `json:"hsn"`
	BillToAddress1     string `json:"billToAddress1"`
	BillToAddress2     string `json:"billToAddress2"`
	BillToCityStateZip string `json:"billToCityStateZip"`
	BillToGST          string `json:"billToGst"`
	ShipToAddress1     string `json:"shipToAddress1"`
	ShipToAddress2     string `json:"shipToAddress2"`
	ShipToCityStateZip string `json:"shipToCityStateZip"`
}

// Upper bounds on bill and expense figures. They keep every computed total
// finite and well inside float64's exact integer range.
const (
	MaxQuantity  = 10_000_000
	MaxUnitPrice = 10_000_000
	MaxAmount    = 1_000_000_000
)

// BillList is a filtered bills view with its totals.
type BillList struct {
	Bills  []domain.BillView `json:"bills"`
	Totals domain.BillTotals `json:"totals"`
}

// BillService defines the bill ledger contract.
type BillService interface {
	Create(ctx context.Context, input *BillInput) (*domain.Bill, error)
	Update(ctx context.Context, id string, input *BillInput) (*domain.Bill, error)
	Get(ctx context.Context, id string) (*domain.Bill, error)
	List(ctx context.Context, q ledger.Query) (*BillList, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	Clear(ctx context.Context, confirmed bool) error
}

type billService struct {
	store *ledger.Store
	clock Clock
}

// NewBillService creates a new BillService implementation.
func NewBillService(store *ledger.Store, clock Clock) BillService {
	return &billService{store: store, clock: clock}
}

func (s *billService) Create(ctx context.Context, input *BillInput) (*domain.Bill, error) {
	bill, err := s.buildBill(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpsertBill(ctx, bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *billService) Update(ctx context.Context, id string, input *BillInput) (*domain.Bill, error) {
	if _, err := s.store.Bill(id); err != nil {
		return nil, err
	}
	bill, err := s.buildBill(id, input)
	if err != nil {
		return nil, err
	}
	saved, err := s.store.UpdateBill(ctx, id, func(b *domain.Bill) { *b = bill })
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *billService) Get(_ context.Context, id string) (*domain.Bill, error) {
	b, err := s.store.Bill(id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *billService) List(_ context.Context, q ledger.Query) (*BillList, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	bills := ledger.FilterBills(s.store.Snapshot().Bills, q)
	views := make([]domain.BillView, len(bills))
	for i := range bills {
		views[i] = domain.NewBillView(bills[i])
	}
	return &BillList{Bills: views, Totals: ledger.BillTotalsOf(bills)}, nil
}

func (s *billService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return s.store.RemoveBill(ctx, id)
}

func (s *billService) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return s.store.ClearBills(ctx)
}

// buildBill normalizes form state into a bill and validates it.
func (s *billService) buildBill(id string, in *BillInput) (domain.Bill, error) {
	product := domain.LookupProduct(strings.TrimSpace(in.ProductID))

	status := domain.PaymentStatus(strings.TrimSpace(in.PaymentStatus))
	if status == "" {
		status = domain.PaymentUnpaid
	}

	b := domain.Bill{
		ID:                 id,
		Date:               defaultDate(in.Date, s.clock.now()),
		CustomerName:       strings.TrimSpace(in.CustomerName),
		ProductID:          product.ID,
		ProductName:        product.Name,
		Quantity:           money.ToNumber(in.Quantity),
		UnitPrice:          money.ToNumber(in.UnitPrice),
		InvoiceNumber:      strings.TrimSpace(in.InvoiceNumber),
		InvoiceLink:        strings.TrimSpace(in.InvoiceLink),
		Notes:              strings.TrimSpace(in.Notes),
		PaymentStatus:      status,
		Freight:            money.ToNumber(in.Freight),
		VehicleNo:          strings.TrimSpace(in.VehicleNo),
		ItemCode:           strings.TrimSpace(in.ItemCode),
		Description:        strings.TrimSpace(in.Description),
		HSN:                strings.TrimSpace(in.HSN),
		BillToAddress1:     strings.TrimSpace(in.BillToAddress1),
		BillToAddress2:     strings.TrimSpace(in.BillToAddress2),
		BillToCityStateZip: strings.TrimSpace(in.BillToCityStateZip),
		BillToGST:          strings.ToUpper(strings.TrimSpace(in.BillToGST)),
		ShipToAddress1:     strings.TrimSpace(in.ShipToAddress1),
		ShipToAddress2:     strings.TrimSpace(in.ShipToAddress2),
		ShipToCityStateZip: strings.TrimSpace(in.ShipToCityStateZip),
	}

	switch {
	case b.CustomerName == "":
		return b, domain.NewValidationError("customerName", "Customer Name required")
	case b.Quantity <= 0:
		return b, domain.NewValidationError("quantity", "Quantity must be greater than 0")
	case b.Quantity > MaxQuantity:
		return b, domain.NewValidationError("quantity", "Quantity is too large")
	case b.UnitPrice < 0:
		return b, domain.NewValidationError("unitPrice", "Unit Price must not be negative")
	case b.UnitPrice > MaxUnitPrice:
		return b, domain.NewValidationError("unitPrice", "Unit Price is too large")
	case b.Freight < 0:
		return b, domain.NewValidationError("freight", "Freight must not be negative")
	case b.Freight > MaxAmount:
		return b, domain.NewValidationError("freight", "Freight is too large")
	case !b.PaymentStatus.Valid():
		return b, domain.NewValidationError("paymentStatus", "Payment Status must be Unpaid, Partial or Paid")
	}
	if err := validateDate("date", b.Date); err != nil {
		return b, err
	}
	if err := invoice.CheckFormat("billToGst", b.BillToGST, invoice.ValidGSTIN); err != nil {
		return b, err
	}
	if err := invoice.CheckFormat("hsn", b.HSN, invoice.ValidHSN); err != nil {
		return b, err
	}
	return b, nil
}

// defaultDate returns the trimmed date, or today when it is blank.
func defaultDate(date string, now time.Time) string {
	if d := strings.TrimSpace(date); d != "" {
		return d
	}
	return money.TodayISO(now)
}

func validateDate(field, date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.NewValidationError(field, "must be a date in YYYY-MM-DD form")
	}
	return nil
}

func validateQuery(q ledger.Query) error {
	if err := validateDate("from", strings.TrimSpace(q.From)); err != nil {
		return err
	}
	return validateDate("to", strings.TrimSpace(q.To))
}
