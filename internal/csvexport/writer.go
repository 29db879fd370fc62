// Package csvexport writes the ledger collections as CSV files.
package csvexport

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"billbook/internal/domain"
	"billbook/internal/money"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Export kinds, used as filename stems.
const (
	KindBills    = "daily-bills"
	KindExpenses = "daily-expenses"
)

// BillColumns is the bills header row.
var BillColumns = []string{
	"Date",
	"Customer Name",
	"Product",
	"Quantity",
	"Unit Price",
	"Total",
	"Invoice Number",
	"Invoice Link",
	"Notes",
	"Payment Status",
}

// ExpenseColumns is the expenses header row.
var ExpenseColumns = []string{
	"Date",
	"Category",
	"Vendor",
	"Amount",
	"Payment Method",
	"Notes",
}

// Writer writes ledger records as CSV. A field is quoted only when it
// contains a comma, a double quote or a line break; embedded quotes are
// doubled. Rows end in "\n".
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteBills writes the bills header followed by one row per bill.
func (w *Writer) WriteBills(bills []domain.Bill) error {
	if err := w.Write(BillColumns); err != nil {
		return err
	}
	for i := range bills {
		if err := w.Write(BillRow(&bills[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteExpenses writes the expenses header followed by one row per expense.
func (w *Writer) WriteExpenses(expenses []domain.Expense) error {
	if err := w.Write(ExpenseColumns); err != nil {
		return err
	}
	for i := range expenses {
		if err := w.Write(ExpenseRow(&expenses[i])); err != nil {
			return err
		}
	}
	return nil
}

// Write writes one row.
func (w *Writer) Write(row []string) error {
	if w.err != nil {
		return w.err
	}
	for i, field := range row {
		if i > 0 {
			w.w.WriteByte(',')
		}
		w.w.WriteString(Escape(field))
	}
	if err := w.w.WriteByte('\n'); err != nil {
		w.err = err
	}
	return w.err
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() {
	if err := w.w.Flush(); err != nil && w.err == nil {
		w.err = err
	}
}

// Error returns the first write or flush error.
func (w *Writer) Error() error {
	return w.err
}

// Escape returns field as a CSV cell.
func Escape(field string) string {
	if !strings.ContainsAny(field, ",\"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// BillRow converts a bill into its export row. Numbers use their shortest
// form ("12.5", "100").
func BillRow(b *domain.Bill) []string {
	return []string{
		b.Date,
		b.CustomerName,
		b.ProductName,
		money.FormatNumber(b.Quantity),
		money.FormatNumber(b.UnitPrice),
		money.FormatNumber(b.LineTotal()),
		b.InvoiceNumber,
		b.InvoiceLink,
		b.Notes,
		string(b.PaymentStatus),
	}
}

// ExpenseRow converts an expense into its export row.
func ExpenseRow(e *domain.Expense) []string {
	return []string{
		e.Date,
		e.Category,
		e.Vendor,
		money.FormatNumber(e.Amount),
		e.PaymentMethod,
		e.Notes,
	}
}

// BuildFilename returns the attachment name for an export.
// Format: {kind}_{YYYY-MM-DD}.csv
func BuildFilename(kind string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", kind, money.TodayISO(now))
}
