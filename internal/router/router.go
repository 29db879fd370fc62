package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "billbook/docs"
	"billbook/internal/handler"
	"billbook/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health  *handler.HealthHandler
	Ledger  *handler.LedgerHandler
	Bills   *handler.BillHandler
	Expense *handler.ExpenseHandler
	Invoice *handler.InvoiceHandler
}

// Options carries the middleware settings of Setup.
type Options struct {
	AllowedOrigins []string
	// Invoice shares send email, so they are limited separately.
	SharesPerMinute float64
	ShareBurst      int
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, opts Options) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	v1.GET("/catalog", h.Ledger.Catalog)
	v1.GET("/summary", h.Ledger.Summary)
	v1.GET("/ledger/status", h.Ledger.Status)
	v1.GET("/export/xlsx", h.Ledger.Workbook)
	v1.POST("/import/xlsx", h.Ledger.ImportXLSX)
	v1.GET("/invoices", h.Invoice.Groups)

	bills := v1.Group("/bills")
	bills.GET("", h.Bills.List)
	bills.POST("", h.Bills.Create)
	bills.DELETE("", h.Bills.Clear)
	bills.GET("/export/csv", h.Bills.ExportCSV)
	bills.GET("/:id", h.Bills.GetByID)
	bills.PUT("/:id", h.Bills.Update)
	bills.DELETE("/:id", h.Bills.Delete)
	bills.GET("/:id/invoice", h.Invoice.Document)
	bills.GET("/:id/invoice/pdf", h.Invoice.PDF)
	bills.POST("/:id/invoice/share", middleware.RateLimit(opts.SharesPerMinute, opts.ShareBurst), h.Invoice.Share)

	expenses := v1.Group("/expenses")
	expenses.GET("", h.Expense.List)
	expenses.POST("", h.Expense.Create)
	expenses.DELETE("", h.Expense.Clear)
	expenses.GET("/export/csv", h.Expense.ExportCSV)
	expenses.GET("/:id", h.Expense.GetByID)
	expenses.PUT("/:id", h.Expense.Update)
	expenses.DELETE("/:id", h.Expense.Delete)

	return r
}
