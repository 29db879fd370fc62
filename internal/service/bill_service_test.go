package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/port"
	"billbook/internal/service"
	"billbook/mocks"
)

func TestBillService_Create_NormalizesFormState(t *testing.T) {
	store, _ := newStore(t, nil)
	svc := service.NewBillService(store, fixedClock())

	bill, err := svc.Create(context.Background(), &service.BillInput{
		CustomerName:  "  Sri Ram Traders ",
		ProductID:     "unknown",
		Quantity:      " 12 ",
		UnitPrice:     6.5,
		InvoiceNumber: " KSP-001 ",
		BillToGST:     "36aaaaa0000a1z5",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, bill.ID)
	assert.Equal(t, "2025-04-07", bill.Date)
	assert.Equal(t, "Sri Ram Traders", bill.CustomerName)
	assert.Equal(t, "bottle_1l", bill.ProductID)
	assert.Equal(t, "Plastic Bottle 1 Liter", bill.ProductName)
	assert.Equal(t, 12.0, bill.Quantity)
	assert.Equal(t, 6.5, bill.UnitPrice)
	assert.Equal(t, "KSP-001", bill.InvoiceNumber)
	assert.Equal(t, domain.PaymentUnpaid, bill.PaymentStatus)
	assert.Equal(t, "36AAAAA0000A1Z5", bill.BillToGST)

	stored, err := svc.Get(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.Equal(t, *bill, *stored)
}

func TestBillService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input service.BillInput
		field string
	}{
		{"blank customer", service.BillInput{CustomerName: "  ", Quantity: 1}, "customerName"},
		{"zero quantity", service.BillInput{CustomerName: "A", Quantity: "0"}, "quantity"},
		{"garbage quantity", service.BillInput{CustomerName: "A", Quantity: "abc"}, "quantity"},
		{"negative price", service.BillInput{CustomerName: "A", Quantity: 1, UnitPrice: -1}, "unitPrice"},
		{"huge quantity", service.BillInput{CustomerName: "A", Quantity: 1e200, UnitPrice: 1}, "quantity"},
		{"huge price", service.BillInput{CustomerName: "A", Quantity: 1, UnitPrice: "1e200"}, "unitPrice"},
		{"huge freight", service.BillInput{CustomerName: "A", Quantity: 1, Freight: 1e13}, "freight"},
		{"bad status", service.BillInput{CustomerName: "A", Quantity: 1, PaymentStatus: "Settled"}, "paymentStatus"},
		{"bad date", service.BillInput{CustomerName: "A", Quantity: 1, Date: "07/04/2025"}, "date"},
		{"bad gst", service.BillInput{CustomerName: "A", Quantity: 1, BillToGST: "123"}, "billToGst"},
		{"bad hsn", service.BillInput{CustomerName: "A", Quantity: 1, HSN: "39"}, "hsn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := newStore(t, nil)
			svc := service.NewBillService(store, fixedClock())

			input := tt.input
			_, err := svc.Create(context.Background(), &input)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestBillService_Update(t *testing.T) {
	store, _ := newStore(t, &domain.Ledger{Bills: []domain.Bill{
		{ID: "b1", CustomerName: "Old", Quantity: 1},
		{ID: "b2", CustomerName: "Other", Quantity: 1},
	}})
	svc := service.NewBillService(store, fixedClock())

	bill, err := svc.Update(context.Background(), "b1", &service.BillInput{
		Date: "2025-04-01", CustomerName: "New", ProductID: "jar", Quantity: 2, UnitPrice: 40, PaymentStatus: "Paid",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", bill.ID)
	assert.Equal(t, "Jar Bottle", bill.ProductName)

	snap := store.Snapshot()
	require.Len(t, snap.Bills, 2)
	assert.Equal(t, "New", snap.Bills[0].CustomerName)
	assert.Equal(t, "Other", snap.Bills[1].CustomerName)

	_, err = svc.Update(context.Background(), "missing", &service.BillInput{CustomerName: "X", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrBillNotFound)
}

func TestBillService_Update_ConcurrentDeleteWins(t *testing.T) {
	store, _ := newStore(t, &domain.Ledger{Bills: []domain.Bill{{ID: "b1", CustomerName: "Old", Quantity: 1}}})

	var svc service.BillService
	deleted := false
	clock := func() time.Time {
		// Runs while the update is building the bill, after its existence check.
		if !deleted {
			deleted = true
			require.NoError(t, svc.Delete(context.Background(), "b1", true))
		}
		return fixedNow
	}
	svc = service.NewBillService(store, clock)

	_, err := svc.Update(context.Background(), "b1", &service.BillInput{CustomerName: "New", Quantity: 2})
	assert.ErrorIs(t, err, domain.ErrBillNotFound)
	assert.True(t, deleted)
	assert.Empty(t, store.Snapshot().Bills)
}

func TestBillService_List(t *testing.T) {
	store, _ := newStore(t, &domain.Ledger{Bills: []domain.Bill{
		{ID: "1", Date: "2025-04-01", CustomerName: "Ravi", Quantity: 10, UnitPrice: 5, PaymentStatus: domain.PaymentPaid},
		{ID: "2", Date: "2025-04-03", CustomerName: "Gopal", Quantity: 2, UnitPrice: 100, PaymentStatus: domain.PaymentUnpaid},
	}})
	svc := service.NewBillService(store, fixedClock())

	list, err := svc.List(context.Background(), ledger.Query{})
	require.NoError(t, err)
	require.Len(t, list.Bills, 2)
	assert.Equal(t, "2", list.Bills[0].ID)
	assert.Equal(t, 200.0, list.Bills[0].Total)
	assert.Equal(t, domain.BillTotals{Sales: 250, Paid: 50, Unpaid: 200}, list.Totals)

	list, err = svc.List(context.Background(), ledger.Query{Text: "ravi"})
	require.NoError(t, err)
	assert.Len(t, list.Bills, 1)
	assert.Equal(t, 50.0, list.Totals.Sales)

	_, err = svc.List(context.Background(), ledger.Query{From: "yesterday"})
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestBillService_DeleteRequiresConfirmation(t *testing.T) {
	store, repo := newStore(t, &domain.Ledger{Bills: []domain.Bill{{ID: "b1"}}})
	svc := service.NewBillService(store, fixedClock())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, "b1", false), domain.ErrConfirmationRequired)
	assert.ErrorIs(t, svc.Clear(ctx, false), domain.ErrConfirmationRequired)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	require.NoError(t, svc.Delete(ctx, "b1", true))
	_, err := svc.Get(ctx, "b1")
	assert.ErrorIs(t, err, domain.ErrBillNotFound)
}

func TestBillService_Clear(t *testing.T) {
	store, _ := newStore(t, &domain.Ledger{
		Bills:    []domain.Bill{{ID: "b1"}, {ID: "b2"}},
		Expenses: []domain.Expense{{ID: "e1"}},
	})
	svc := service.NewBillService(store, fixedClock())

	require.NoError(t, svc.Clear(context.Background(), true))
	snap := store.Snapshot()
	assert.Empty(t, snap.Bills)
	assert.Len(t, snap.Expenses, 1)
}

func TestBillService_SaveFailure(t *testing.T) {
	repo := new(mocks.MockLedgerRepository)
	repo.On("Load", mock.Anything).Return(&port.LoadResult{Ledger: domain.NewLedger()}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(domain.ErrStorageUnavailable)
	store, err := ledger.Open(context.Background(), repo)
	require.NoError(t, err)

	svc := service.NewBillService(store, fixedClock())
	_, err = svc.Create(context.Background(), &service.BillInput{CustomerName: "A", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Empty(t, store.Snapshot().Bills)
}
