package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/money"
)

// ExpenseInput is the expense form state.
type ExpenseInput struct {
	Date          string `json:"date"`
	Category      string `json:"category"`
	Vendor        string `json:"vendor"`
	Amount        any    `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

// ExpenseList is a filtered expenses view with its total.
type ExpenseList struct {
	Expenses []domain.Expense     `json:"expenses"`
	Totals   domain.ExpenseTotals `json:"totals"`
}

// ExpenseService defines the expense ledger contract.
type ExpenseService interface {
	Create(ctx context.Context, input *ExpenseInput) (*domain.Expense, error)
	Update(ctx context.Context, id string, input *ExpenseInput) (*domain.Expense, error)
	Get(ctx context.Context, id string) (*domain.Expense, error)
	List(ctx context.Context, q ledger.Query) (*ExpenseList, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	Clear(ctx context.Context, confirmed bool) error
}

type expenseService struct {
	store *ledger.Store
	clock Clock
}

// NewExpenseService creates a new ExpenseService implementation.
func NewExpenseService(store *ledger.Store, clock Clock) ExpenseService {
	return &expenseService{store: store, clock: clock}
}

func (s *expenseService) Create(ctx context.Context, input *ExpenseInput) (*domain.Expense, error) {
	e, err := s.buildExpense(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpsertExpense(ctx, e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *expenseService) Update(ctx context.Context, id string, input *ExpenseInput) (*domain.Expense, error) {
	if _, err := s.store.Expense(id); err != nil {
		return nil, err
	}
	e, err := s.buildExpense(id, input)
	if err != nil {
		return nil, err
	}
	saved, err := s.store.UpdateExpense(ctx, id, func(cur *domain.Expense) { *cur = e })
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *expenseService) Get(_ context.Context, id string) (*domain.Expense, error) {
	e, err := s.store.Expense(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *expenseService) List(_ context.Context, q ledger.Query) (*ExpenseList, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	expenses := ledger.FilterExpenses(s.store.Snapshot().Expenses, q)
	return &ExpenseList{Expenses: expenses, Totals: ledger.ExpenseTotalsOf(expenses)}, nil
}

func (s *expenseService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return s.store.RemoveExpense(ctx, id)
}

func (s *expenseService) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return s.store.ClearExpenses(ctx)
}

func (s *expenseService) buildExpense(id string, in *ExpenseInput) (domain.Expense, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = domain.DefaultExpenseCategory
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = domain.DefaultPaymentMethod
	}

	e := domain.Expense{
		ID:            id,
		Date:          defaultDate(in.Date, s.clock.now()),
		Category:      category,
		Vendor:        strings.TrimSpace(in.Vendor),
		Amount:        money.ToNumber(in.Amount),
		PaymentMethod: method,
		Notes:         strings.TrimSpace(in.Notes),
	}

	if e.Vendor == "" {
		return e, domain.NewValidationError("vendor", "Please enter Vendor / Paid To")
	}
	if e.Amount <= 0 {
		return e, domain.NewValidationError("amount", "Amount must be greater than 0")
	}
	if e.Amount > MaxAmount {
		return e, domain.NewValidationError("amount", "Amount is too large")
	}
	if err := validateDate("date", e.Date); err != nil {
		return e, err
	}
	return e, nil
}
