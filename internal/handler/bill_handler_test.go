package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/handler"
	"billbook/internal/ledger"
	"billbook/internal/service"
	"billbook/mocks"
)

func newBillHandler() (*handler.BillHandler, *mocks.MockBillService, *mocks.MockExportService) {
	bills := new(mocks.MockBillService)
	exports := new(mocks.MockExportService)
	return handler.NewBillHandler(bills, exports), bills, exports
}

func TestBillHandler_Create(t *testing.T) {
	h, bills, _ := newBillHandler()

	bills.On("Create", mock.Anything, mock.MatchedBy(func(in *service.BillInput) bool {
		return in.CustomerName == "Ravi" && in.Quantity == "10" && in.UnitPrice == float64(12.5)
	})).Return(&domain.Bill{ID: "b1", CustomerName: "Ravi", Quantity: 10, UnitPrice: 12.5}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/bills", map[string]any{
		"customerName": "Ravi", "quantity": "10", "unitPrice": 12.5,
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	var bill domain.Bill
	require.NoError(t, json.Unmarshal(env.Data, &bill))
	assert.Equal(t, "b1", bill.ID)
	bills.AssertExpectations(t)
}

func TestBillHandler_Create_Validation(t *testing.T) {
	h, bills, _ := newBillHandler()
	bills.On("Create", mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("customerName", "Customer Name required"))

	c, w := newContext(http.MethodPost, "/api/v1/bills", map[string]any{"quantity": 1})
	h.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "customerName", env.Error.Field)
	assert.Equal(t, "Customer Name required", env.Error.Message)
}

func TestBillHandler_Create_BadBody(t *testing.T) {
	h, bills, _ := newBillHandler()

	c, w := newContext(http.MethodPost, "/api/v1/bills", []int{1, 2})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	bills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBillHandler_List(t *testing.T) {
	h, bills, _ := newBillHandler()
	bills.On("List", mock.Anything, ledger.Query{Text: "ravi", From: "2025-04-01"}).
		Return(&service.BillList{
			Bills:  []domain.BillView{domain.NewBillView(domain.Bill{ID: "b1", Quantity: 2, UnitPrice: 5})},
			Totals: domain.BillTotals{Sales: 10, Unpaid: 10},
		}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/bills?q=ravi&from=2025-04-01", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.EqualValues(t, 1, env.Meta["count"])
	totals := env.Meta["totals"].(map[string]any)
	assert.EqualValues(t, 10, totals["sales"])
	var views []domain.BillView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Equal(t, 10.0, views[0].Total)
}

func TestBillHandler_GetByID_NotFound(t *testing.T) {
	h, bills, _ := newBillHandler()
	bills.On("Get", mock.Anything, "missing").Return(nil, domain.ErrBillNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/bills/missing", nil, "id", "missing")
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BILL_NOT_FOUND", decode(t, w).Error.Code)
}

func TestBillHandler_Update(t *testing.T) {
	h, bills, _ := newBillHandler()
	bills.On("Update", mock.Anything, "b1", mock.Anything).
		Return(&domain.Bill{ID: "b1", CustomerName: "Ravi K"}, nil)

	c, w := newContext(http.MethodPut, "/api/v1/bills/b1", map[string]any{"customerName": "Ravi K", "quantity": 1}, "id", "b1")
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	bills.AssertExpectations(t)
}

func TestBillHandler_Delete(t *testing.T) {
	t.Run("unconfirmed", func(t *testing.T) {
		h, bills, _ := newBillHandler()
		bills.On("Delete", mock.Anything, "b1", false).Return(domain.ErrConfirmationRequired)

		c, w := newContext(http.MethodDelete, "/api/v1/bills/b1", nil, "id", "b1")
		h.Delete(c)

		assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	})

	t.Run("confirmed", func(t *testing.T) {
		h, bills, _ := newBillHandler()
		bills.On("Delete", mock.Anything, "b1", true).Return(nil)

		c, w := newContext(http.MethodDelete, "/api/v1/bills/b1?confirm=true", nil, "id", "b1")
		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		bills.AssertExpectations(t)
	})
}

func TestBillHandler_Clear(t *testing.T) {
	h, bills, _ := newBillHandler()
	bills.On("Clear", mock.Anything, true).Return(nil)

	c, w := newContext(http.MethodDelete, "/api/v1/bills?confirm=1", nil)
	h.Clear(c)

	assert.Equal(t, http.StatusOK, w.Code)
	bills.AssertExpectations(t)
}

func TestBillHandler_ExportCSV(t *testing.T) {
	h, _, exports := newBillHandler()
	exports.On("BillsCSV", mock.Anything, ledger.Query{To: "2025-04-30"}, true).
		Return(&service.Attachment{
			Filename:    "daily-bills_2025-04-07.csv",
			ContentType: service.CSVContentType,
			Data:        []byte("Date,Customer Name\n"),
		}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/bills/export/csv?to=2025-04-30&bom=true", nil)
	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.CSVContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="daily-bills_2025-04-07.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Date,Customer Name\n", w.Body.String())
}
