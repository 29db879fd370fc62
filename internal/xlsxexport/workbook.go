// Package xlsxexport writes the ledger as an Excel workbook and reads bills
// back from one.
package xlsxexport

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"billbook/internal/csvexport"
	"billbook/internal/domain"
)

// Sheet names.
const (
	SheetBills    = "Bills"
	SheetExpenses = "Expenses"
	SheetInvoices = "Invoices"
)

var invoiceColumns = []string{"Invoice Number", "Date", "Customer Name", "Items", "Total", "Consistent"}

// Workbook holds the data written to each sheet.
type Workbook struct {
	Bills    []domain.Bill
	Expenses []domain.Expense
	Invoices []domain.InvoiceGroup
}

// Write renders wb as an .xlsx file to w.
func Write(w io.Writer, wb Workbook) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetBills); err != nil {
		return fmt.Errorf("naming bills sheet: %w", err)
	}
	for _, name := range []string{SheetExpenses, SheetInvoices} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating %s sheet: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	billRows := make([][]any, 0, len(wb.Bills))
	for i := range wb.Bills {
		b := &wb.Bills[i]
		billRows = append(billRows, []any{
			b.Date, b.CustomerName, b.ProductName, b.Quantity, b.UnitPrice, b.LineTotal(),
			b.InvoiceNumber, b.InvoiceLink, b.Notes, string(b.PaymentStatus),
		})
	}
	expenseRows := make([][]any, 0, len(wb.Expenses))
	for i := range wb.Expenses {
		e := &wb.Expenses[i]
		expenseRows = append(expenseRows, []any{e.Date, e.Category, e.Vendor, e.Amount, e.PaymentMethod, e.Notes})
	}
	invoiceRows := make([][]any, 0, len(wb.Invoices))
	for _, g := range wb.Invoices {
		consistent := "Yes"
		if !g.Consistent {
			consistent = "No"
		}
		invoiceRows = append(invoiceRows, []any{g.InvoiceNumber, g.Date, g.CustomerName, g.ItemCount, g.Total, consistent})
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{SheetBills, csvexport.BillColumns, billRows},
		{SheetExpenses, csvexport.ExpenseColumns, expenseRows},
		{SheetInvoices, invoiceColumns, invoiceRows},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.header, s.rows, bold); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 18)
}

// BillRecord is one bills-sheet row as raw cell text.
type BillRecord struct {
	Row           int
	Date          string
	CustomerName  string
	Product       string
	Quantity      string
	UnitPrice     string
	InvoiceNumber string
	InvoiceLink   string
	Notes         string
	PaymentStatus string
}

// ReadBills parses the Bills sheet of an .xlsx file. Columns are located by
// header text, so their order may differ from the exported layout. Blank
// rows are skipped; the Total column is ignored.
func ReadBills(r io.Reader) ([]BillRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetBills)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet: %w", SheetBills, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["customer name"]; !ok {
		return nil, fmt.Errorf("%s sheet has no Customer Name column", SheetBills)
	}
	cell := func(row []string, name string) string {
		i, ok := index[strings.ToLower(name)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []BillRecord
	for n, row := range rows[1:] {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		out = append(out, BillRecord{
			Row:           n + 2,
			Date:          cell(row, "Date"),
			CustomerName:  cell(row, "Customer Name"),
			Product:       cell(row, "Product"),
			Quantity:      cell(row, "Quantity"),
			UnitPrice:     cell(row, "Unit Price"),
			InvoiceNumber: cell(row, "Invoice Number"),
			InvoiceLink:   cell(row, "Invoice Link"),
			Notes:         cell(row, "Notes"),
			PaymentStatus: cell(row, "Payment Status"),
		})
	}
	return out, nil
}
