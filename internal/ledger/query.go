package ledger

import (
	"slices"
	"strings"

	"billbook/internal/domain"
)

// Query selects records by text and inclusive ISO date range. Empty fields
// disable their predicate.
type Query struct {
	Text string `form:"q" json:"q"`
	From string `form:"from" json:"from"`
	To   string `form:"to" json:"to"`
}

func (q Query) match(date string, fields []string) bool {
	if q.From != "" && date < q.From {
		return false
	}
	if q.To != "" && date > q.To {
		return false
	}
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), text) {
			return true
		}
	}
	return false
}

// Filter returns the records matching q, newest date first. Records with
// equal dates keep their input order.
func Filter[T domain.Record](items []T, q Query, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q.match(it.RecordDate(), fields(it)) {
			out = append(out, it)
		}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return strings.Compare(b.RecordDate(), a.RecordDate())
	})
	return out
}

func billFields(b domain.Bill) []string {
	return []string{b.CustomerName, b.ProductName, b.InvoiceNumber}
}

func expenseFields(e domain.Expense) []string {
	return []string{e.Category, e.Vendor, e.PaymentMethod}
}

// FilterBills matches q against customer, product and invoice number.
func FilterBills(bills []domain.Bill, q Query) []domain.Bill {
	return Filter(bills, q, billFields)
}

// FilterExpenses matches q against category, vendor and payment method.
func FilterExpenses(expenses []domain.Expense, q Query) []domain.Expense {
	return Filter(expenses, q, expenseFields)
}

// BillTotalsOf sums sales and the paid share of bills.
func BillTotalsOf(bills []domain.Bill) domain.BillTotals {
	var t domain.BillTotals
	for i := range bills {
		total := bills[i].LineTotal()
		t.Sales += total
		if bills[i].PaymentStatus == domain.PaymentPaid {
			t.Paid += total
		}
	}
	t.Unpaid = t.Sales - t.Paid
	return t
}

// ExpenseTotalsOf sums expense amounts.
func ExpenseTotalsOf(expenses []domain.Expense) domain.ExpenseTotals {
	var t domain.ExpenseTotals
	for i := range expenses {
		t.Total += expenses[i].Amount
	}
	return t
}

// SnapshotOf computes the all-time sales, expenses and net figures.
func SnapshotOf(doc *domain.Ledger) domain.Snapshot {
	sales := BillTotalsOf(doc.Bills).Sales
	expenses := ExpenseTotalsOf(doc.Expenses).Total
	return domain.Snapshot{Sales: sales, Expenses: expenses, Net: sales - expenses}
}
