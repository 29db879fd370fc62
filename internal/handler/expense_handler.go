package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/ledger"
	"billbook/internal/service"
)

// ExpenseHandler handles expense ledger endpoints.
type ExpenseHandler struct {
	expenses service.ExpenseService
	exports  service.ExportService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenses service.ExpenseService, exports service.ExportService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, exports: exports}
}

// Create handles POST /api/v1/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req service.ExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be an expense object")
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, expense)
}

// List handles GET /api/v1/expenses?q=&from=&to=
func (h *ExpenseHandler) List(c *gin.Context) {
	var q ledger.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid query parameters")
		return
	}

	list, err := h.expenses.List(c.Request.Context(), q)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondWithMeta(c, list.Expenses, gin.H{"count": len(list.Expenses), "totals": list.Totals})
}

// GetByID handles GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	expense, err := h.expenses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, expense)
}

// Update handles PUT /api/v1/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req service.ExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be an expense object")
		return
	}

	expense, err := h.expenses.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, expense)
}

// Delete handles DELETE /api/v1/expenses/:id?confirm=true
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenses.Delete(c.Request.Context(), c.Param("id"), queryBool(c, "confirm")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "expense deleted"})
}

// Clear handles DELETE /api/v1/expenses?confirm=true
func (h *ExpenseHandler) Clear(c *gin.Context) {
	if err := h.expenses.Clear(c.Request.Context(), queryBool(c, "confirm")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "all expenses cleared"})
}

// ExportCSV handles GET /api/v1/expenses/export/csv?q=&from=&to=&bom=
func (h *ExpenseHandler) ExportCSV(c *gin.Context) {
	var q ledger.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid query parameters")
		return
	}

	att, err := h.exports.ExpensesCSV(c.Request.Context(), q, queryBool(c, "bom"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAttachment(c, att.Filename, att.ContentType, att.Data)
}
