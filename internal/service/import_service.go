package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/araddon/dateparse"

	"billbook/internal/domain"
	"billbook/internal/xlsxexport"
)

// RowError reports a spreadsheet row that was not imported.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ImportResult summarizes a bills import.
type ImportResult struct {
	Imported int        `json:"imported"`
	Failed   []RowError `json:"failed"`
}

// ImportService loads bills from a workbook in the export layout.
type ImportService interface {
	ImportBills(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type importService struct {
	bills BillService
}

// NewImportService creates an ImportService that creates bills through bills.
func NewImportService(bills BillService) ImportService {
	return &importService{bills: bills}
}

// ImportBills creates one bill per valid row. Invalid rows are reported and
// skipped; a storage failure stops the import.
func (s *importService) ImportBills(ctx context.Context, r io.Reader) (*ImportResult, error) {
	records, err := xlsxexport.ReadBills(r)
	if err != nil {
		return nil, domain.NewValidationError("file", err.Error())
	}

	result := &ImportResult{Failed: []RowError{}}
	for _, rec := range records {
		date, ok := normalizeDate(rec.Date)
		if !ok {
			result.Failed = append(result.Failed, RowError{Row: rec.Row, Field: "date", Message: "Date not recognised"})
			continue
		}
		productID := ""
		if p, ok := domain.ProductByName(rec.Product); ok {
			productID = p.ID
		}
		_, err := s.bills.Create(ctx, &BillInput{
			Date:          date,
			CustomerName:  rec.CustomerName,
			ProductID:     productID,
			Quantity:      rec.Quantity,
			UnitPrice:     rec.UnitPrice,
			InvoiceNumber: rec.InvoiceNumber,
			InvoiceLink:   rec.InvoiceLink,
			Notes:         rec.Notes,
			PaymentStatus: rec.PaymentStatus,
		})
		var verr *domain.ValidationError
		switch {
		case err == nil:
			result.Imported++
		case errors.As(err, &verr):
			result.Failed = append(result.Failed, RowError{Row: rec.Row, Field: verr.Field, Message: verr.Message})
		default:
			return result, err
		}
	}
	return result, nil
}

// normalizeDate rewrites a spreadsheet date into YYYY-MM-DD. Ambiguous
// numeric dates are read day first. Blank dates pass through.
func normalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", true
	}
	t, err := dateparse.ParseAny(raw, dateparse.PreferMonthFirst(false))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
