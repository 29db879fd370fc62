package domain

import "strings"

// Collection names one of the two lists in the ledger document.
type Collection string

const (
	CollectionBills    Collection = "bills"
	CollectionExpenses Collection = "expenses"
)

// PaymentStatus is the settlement state of a bill.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

// PaymentStatuses lists the accepted statuses in display order.
var PaymentStatuses = []PaymentStatus{PaymentUnpaid, PaymentPartial, PaymentPaid}

// Valid reports whether s is one of PaymentStatuses.
func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Product is an entry of the fixed sales catalog.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Products is the sales catalog; the first entry is the fallback for
// unknown ids.
var Products = []Product{
	{ID: "bottle_1l", Name: "Plastic Bottle 1 Liter"},
	{ID: "bottle_2l", Name: "Plastic Bottle 2 Liters"},
	{ID: "bottle_5l", Name: "Plastic Bottle 5 Liters"},
	{ID: "jar", Name: "Jar Bottle"},
}

// LookupProduct returns the catalog entry for id, falling back to the first
// product.
func LookupProduct(id string) Product {
	for _, p := range Products {
		if p.ID == id {
			return p
		}
	}
	return Products[0]
}

// Expense categories offered by the form. Free text is accepted as well.
var ExpenseCategories = []string{
	"Raw Material",
	"Transport",
	"Electricity",
	"Salary/Wages",
	"Maintenance",
	"Office",
	"Marketing",
	"Other",
}

// Payment methods offered by the expense form.
var PaymentMethods = []string{
	"Cash",
	"Bank Transfer",
	"Card",
	"Check",
	"UPI",
	"Other",
}

const (
	DefaultExpenseCategory = "Raw Material"
	DefaultPaymentMethod   = "Cash"
)

// ProductByName returns the catalog entry whose name or id equals s,
// ignoring case.
func ProductByName(s string) (Product, bool) {
	for _, p := range Products {
		if strings.EqualFold(p.Name, s) || strings.EqualFold(p.ID, s) {
			return p, true
		}
	}
	return Product{}, false
}
