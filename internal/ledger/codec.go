// Package ledger owns the in-memory ledger document: decoding it from a
// storage slot, applying mutations, and deriving filtered views, totals and
// invoice groups from it.
package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"

	"billbook/internal/domain"
	"billbook/internal/money"
)

// Decode reads a stored ledger document. It never fails: empty input yields
// an empty document, and input that is not a JSON object yields an empty
// document with recovered set. Bills and expenses are coerced separately: a
// missing collection is empty, and one that is present but not an array is
// emptied with recovered set while the other collection is kept. Array
// elements that are not objects are dropped.
func Decode(raw []byte) (ledger *domain.Ledger, recovered bool) {
	ledger = domain.NewLedger()
	if len(bytes.TrimSpace(raw)) == 0 {
		return ledger, false
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		return ledger, true
	}

	bills, okBills := decodeObjects(top["bills"])
	expenses, okExpenses := decodeObjects(top["expenses"])
	recovered = !okBills || !okExpenses

	for _, m := range bills {
		ledger.Bills = append(ledger.Bills, billFromMap(m))
	}
	for _, m := range expenses {
		ledger.Expenses = append(ledger.Expenses, expenseFromMap(m))
	}
	return ledger, recovered
}

// Encode serializes the document for storage.
func Encode(ledger *domain.Ledger) ([]byte, error) {
	doc := ledger.Clone()
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return data, nil
}

// decodeObjects returns the object elements of a JSON array. A missing
// field is an empty array; a present non-array is reported as not ok.
func decodeObjects(raw json.RawMessage) ([]map[string]any, bool) {
	if len(raw) == 0 {
		return nil, true
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	if items == nil {
		// JSON null
		return nil, false
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		var m map[string]any
		if err := json.Unmarshal(item, &m); err != nil || m == nil {
			continue
		}
		out = append(out, m)
	}
	return out, true
}

func str(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

func num(m map[string]any, key string) float64 {
	return money.ToNumber(m[key])
}

func billFromMap(m map[string]any) domain.Bill {
	return domain.Bill{
		ID:                 str(m, "id"),
		Date:               str(m, "date"),
		CustomerName:       str(m, "customerName"),
		ProductID:          str(m, "productId"),
		ProductName:        str(m, "productName"),
		Quantity:           num(m, "quantity"),
		UnitPrice:          num(m, "unitPrice"),
		InvoiceNumber:      str(m, "invoiceNumber"),
		InvoiceLink:        str(m, "invoiceLink"),
		Notes:              str(m, "notes"),
		PaymentStatus:      domain.PaymentStatus(str(m, "paymentStatus")),
		Freight:            num(m, "freight"),
		VehicleNo:          str(m, "vehicleNo"),
		ItemCode:           str(m, "itemCode"),
		Description:        str(m, "description"),
		HSN:                str(m, "hsn"),
		BillToAddress1:     str(m, "billToAddress1"),
		BillToAddress2:     str(m, "billToAddress2"),
		BillToCityStateZip: str(m, "billToCityStateZip"),
		BillToGST:          str(m, "billToGst"),
		ShipToAddress1:     str(m, "shipToAddress1"),
		ShipToAddress2:     str(m, "shipToAddress2"),
		ShipToCityStateZip: str(m, "shipToCityStateZip"),
	}
}

func expenseFromMap(m map[string]any) domain.Expense {
	return domain.Expense{
		ID:            str(m, "id"),
		Date:          str(m, "date"),
		Category:      str(m, "category"),
		Vendor:        str(m, "vendor"),
		Amount:        num(m, "amount"),
		PaymentMethod: str(m, "paymentMethod"),
		Notes:         str(m, "notes"),
	}
}
