package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/service"
)

// InvoiceHandler handles invoice grouping and document endpoints.
type InvoiceHandler struct {
	invoices service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoices service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// Groups handles GET /api/v1/invoices
func (h *InvoiceHandler) Groups(c *gin.Context) {
	groups, err := h.invoices.Groups(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondWithMeta(c, groups, gin.H{"count": len(groups)})
}

// Document handles GET /api/v1/bills/:id/invoice
func (h *InvoiceHandler) Document(c *gin.Context) {
	doc, err := h.invoices.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// PDF handles GET /api/v1/bills/:id/invoice/pdf
// @Summary      Download tax invoice
// @Description  Renders the GST tax invoice of one bill as an A4 PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id path string true "Bill ID"
// @Success      200 {file} binary
// @Failure      404 {object} APIResponse
// @Router       /bills/{id}/invoice/pdf [get]
func (h *InvoiceHandler) PDF(c *gin.Context) {
	pdf, err := h.invoices.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAttachment(c, pdf.Filename, pdf.ContentType, pdf.Data)
}

// Share handles POST /api/v1/bills/:id/invoice/share
// @Summary      Archive and share an invoice
// @Description  Uploads the rendered PDF, stores a presigned link on the bill and optionally emails it
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path string true "Bill ID"
// @Success      200 {object} APIResponse{data=service.ShareResult}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      503 {object} APIResponse
// @Router       /bills/{id}/invoice/share [post]
func (h *InvoiceHandler) Share(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	// An empty body archives without mailing.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be {\"email\": \"...\"}")
			return
		}
	}

	result, err := h.invoices.Share(c.Request.Context(), c.Param("id"), req.Email)
	if err != nil {
		if result == nil {
			HandleError(c, err)
			return
		}
		// Archived and linked, but the email did not go out.
		c.JSON(http.StatusOK, APIResponse{
			Success: true,
			Data:    result,
			Error:   &APIError{Code: "EMAIL_FAILED", Message: unwrapMessage(err)},
		})
		return
	}
	RespondOK(c, result)
}

func unwrapMessage(err error) string {
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}
	return err.Error()
}
