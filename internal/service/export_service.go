package service

import (
	"bytes"
	"context"

	"billbook/internal/csvexport"
	"billbook/internal/ledger"
	"billbook/internal/xlsxexport"
)

// Content types of export attachments.
const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Attachment is a generated file ready for download.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService defines the export contract. CSV exports cover the
// filtered view, newest first.
type ExportService interface {
	BillsCSV(ctx context.Context, q ledger.Query, bom bool) (*Attachment, error)
	ExpensesCSV(ctx context.Context, q ledger.Query, bom bool) (*Attachment, error)
	Workbook(ctx context.Context) (*Attachment, error)
}

type exportService struct {
	store *ledger.Store
	clock Clock
}

// NewExportService creates a new ExportService implementation.
func NewExportService(store *ledger.Store, clock Clock) ExportService {
	return &exportService{store: store, clock: clock}
}

func (s *exportService) BillsCSV(_ context.Context, q ledger.Query, bom bool) (*Attachment, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	bills := ledger.FilterBills(s.store.Snapshot().Bills, q)
	return s.writeCSV(csvexport.KindBills, bom, func(w *csvexport.Writer) error {
		return w.WriteBills(bills)
	})
}

func (s *exportService) ExpensesCSV(_ context.Context, q ledger.Query, bom bool) (*Attachment, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	expenses := ledger.FilterExpenses(s.store.Snapshot().Expenses, q)
	return s.writeCSV(csvexport.KindExpenses, bom, func(w *csvexport.Writer) error {
		return w.WriteExpenses(expenses)
	})
}

func (s *exportService) writeCSV(kind string, bom bool, write func(*csvexport.Writer) error) (*Attachment, error) {
	var buf bytes.Buffer
	if bom {
		buf.Write(csvexport.BOM)
	}
	w := csvexport.NewWriter(&buf)
	if err := write(w); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &Attachment{
		Filename:    csvexport.BuildFilename(kind, s.clock.now()),
		ContentType: CSVContentType,
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) Workbook(_ context.Context) (*Attachment, error) {
	doc := s.store.Snapshot()
	wb := xlsxexport.Workbook{
		Bills:    ledger.FilterBills(doc.Bills, ledger.Query{}),
		Expenses: ledger.FilterExpenses(doc.Expenses, ledger.Query{}),
		Invoices: ledger.GroupInvoices(doc.Bills),
	}

	var buf bytes.Buffer
	if err := xlsxexport.Write(&buf, wb); err != nil {
		return nil, err
	}
	return &Attachment{
		Filename:    "ledger_" + s.clock.now().Format("2006-01-02") + ".xlsx",
		ContentType: XLSXContentType,
		Data:        buf.Bytes(),
	}, nil
}
