package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/ledger"
	"billbook/internal/service"
)

// BillHandler handles bill ledger endpoints.
type BillHandler struct {
	bills   service.BillService
	exports service.ExportService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(bills service.BillService, exports service.ExportService) *BillHandler {
	return &BillHandler{bills: bills, exports: exports}
}

// Create handles POST /api/v1/bills
func (h *BillHandler) Create(c *gin.Context) {
	var req service.BillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a bill object")
		return
	}

	bill, err := h.bills.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, bill)
}

// List handles GET /api/v1/bills?q=&from=&to=
func (h *BillHandler) List(c *gin.Context) {
	var q ledger.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid query parameters")
		return
	}

	list, err := h.bills.List(c.Request.Context(), q)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondWithMeta(c, list.Bills, gin.H{"count": len(list.Bills), "totals": list.Totals})
}

// GetByID handles GET /api/v1/bills/:id
func (h *BillHandler) GetByID(c *gin.Context) {
	bill, err := h.bills.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bill)
}

// Update handles PUT /api/v1/bills/:id
func (h *BillHandler) Update(c *gin.Context) {
	var req service.BillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a bill object")
		return
	}

	bill, err := h.bills.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bill)
}

// Delete handles DELETE /api/v1/bills/:id?confirm=true
func (h *BillHandler) Delete(c *gin.Context) {
	if err := h.bills.Delete(c.Request.Context(), c.Param("id"), queryBool(c, "confirm")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "bill deleted"})
}

// Clear handles DELETE /api/v1/bills?confirm=true
func (h *BillHandler) Clear(c *gin.Context) {
	if err := h.bills.Clear(c.Request.Context(), queryBool(c, "confirm")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "all bills cleared"})
}

// ExportCSV handles GET /api/v1/bills/export/csv?q=&from=&to=&bom=
func (h *BillHandler) ExportCSV(c *gin.Context) {
	var q ledger.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid query parameters")
		return
	}

	att, err := h.exports.BillsCSV(c.Request.Context(), q, queryBool(c, "bom"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAttachment(c, att.Filename, att.ContentType, att.Data)
}
