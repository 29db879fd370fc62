package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"billbook/internal/domain"
	"billbook/internal/service"
	"billbook/internal/xlsxexport"
)

func TestImportService_ImportBills(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", xlsxexport.SheetBills))
	require.NoError(t, f.SetSheetRow(xlsxexport.SheetBills, "A1", &[]any{"Date", "Customer Name", "Product", "Quantity", "Unit Price", "Payment Status"}))
	require.NoError(t, f.SetSheetRow(xlsxexport.SheetBills, "A2", &[]any{"2025-04-01", "Ravi", "Jar Bottle", 5, 40, "Paid"}))
	require.NoError(t, f.SetSheetRow(xlsxexport.SheetBills, "A3", &[]any{"2025-04-01", "", "Jar Bottle", 5, 40, "Paid"}))
	require.NoError(t, f.SetSheetRow(xlsxexport.SheetBills, "A4", &[]any{"02/04/2025", "Gopal", "bottle_5l", 1, 90, ""}))
	require.NoError(t, f.SetSheetRow(xlsxexport.SheetBills, "A5", &[]any{"sometime soon", "Hari", "Jar Bottle", 1, 40, ""}))
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	store, _ := newStore(t, nil)
	svc := service.NewImportService(service.NewBillService(store, fixedClock()))

	res, err := svc.ImportBills(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, service.RowError{Row: 3, Field: "customerName", Message: "Customer Name required"}, res.Failed[0])
	assert.Equal(t, service.RowError{Row: 5, Field: "date", Message: "Date not recognised"}, res.Failed[1])

	bills := store.Snapshot().Bills
	require.Len(t, bills, 2)
	assert.Equal(t, "jar", bills[0].ProductID)
	assert.Equal(t, domain.PaymentPaid, bills[0].PaymentStatus)
	assert.Equal(t, "bottle_5l", bills[1].ProductID)
	assert.Equal(t, "2025-04-02", bills[1].Date)
	assert.Equal(t, domain.PaymentUnpaid, bills[1].PaymentStatus)
}

func TestImportService_NotAWorkbook(t *testing.T) {
	store, _ := newStore(t, nil)
	svc := service.NewImportService(service.NewBillService(store, fixedClock()))

	_, err := svc.ImportBills(context.Background(), bytes.NewReader([]byte("plain text")))
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
