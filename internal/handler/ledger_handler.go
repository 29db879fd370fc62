package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/service"
)

// maxImportSize bounds uploaded workbooks.
const maxImportSize = 10 << 20

// LedgerHandler handles ledger-wide endpoints: catalog, summary, status,
// workbook export and import.
type LedgerHandler struct {
	summary service.SummaryService
	exports service.ExportService
	imports service.ImportService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(summary service.SummaryService, exports service.ExportService, imports service.ImportService) *LedgerHandler {
	return &LedgerHandler{summary: summary, exports: exports, imports: imports}
}

// Catalog handles GET /api/v1/catalog
func (h *LedgerHandler) Catalog(c *gin.Context) {
	RespondOK(c, h.summary.Catalog())
}

// Summary handles GET /api/v1/summary
// @Summary      All-time totals
// @Tags         ledger
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.Snapshot}
// @Router       /summary [get]
func (h *LedgerHandler) Summary(c *gin.Context) {
	RespondOK(c, h.summary.Snapshot(c.Request.Context()))
}

// Status handles GET /api/v1/ledger/status
func (h *LedgerHandler) Status(c *gin.Context) {
	RespondOK(c, h.summary.Status(c.Request.Context()))
}

// Workbook handles GET /api/v1/export/xlsx
func (h *LedgerHandler) Workbook(c *gin.Context) {
	att, err := h.exports.Workbook(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAttachment(c, att.Filename, att.ContentType, att.Data)
}

// ImportXLSX handles POST /api/v1/import/xlsx (multipart field "file")
// @Summary      Import bills from a workbook
// @Tags         ledger
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Workbook in the export layout"
// @Success      200 {object} APIResponse{data=service.ImportResult}
// @Failure      400 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Router       /import/xlsx [post]
func (h *LedgerHandler) ImportXLSX(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	fh, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart field \"file\" is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "cannot read uploaded file")
		return
	}
	defer f.Close()

	result, err := h.imports.ImportBills(c.Request.Context(), f)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
