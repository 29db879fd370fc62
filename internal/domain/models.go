package domain

// Bill is one sales line entry. Quantity and UnitPrice are stored already
// coerced; the line total is derived and never persisted.
type Bill struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	CustomerName  string        `json:"customerName"`
	ProductID     string        `json:"productId"`
	ProductName   string        `json:"productName"`
	Quantity      float64       `json:"quantity"`
	UnitPrice     float64       `json:"unitPrice"`
	InvoiceNumber string        `json:"invoiceNumber"`
	InvoiceLink   string        `json:"invoiceLink"`
	Notes         string        `json:"notes"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	// Invoice document fields; all optional.
	Freight            float64 `json:"freight,omitempty"`
	VehicleNo          string  `json:"vehicleNo,omitempty"`
	ItemCode           string  `json:"itemCode,omitempty"`
	Description        string  `json:"description,omitempty"`
	HSN                string  `json:"hsn,omitempty"`
	BillToAddress1     string  `json:"billToAddress1,omitempty"`
	BillToAddress2     string  `json:"billToAddress2,omitempty"`
	BillToCityStateZip string  `json:"billToCityStateZip,omitempty"`
	BillToGST          string  `json:"billToGst,omitempty"`
	ShipToAddress1     string  `json:"shipToAddress1,omitempty"`
	ShipToAddress2     string  `json:"shipToAddress2,omitempty"`
	ShipToCityStateZip string  `json:"shipToCityStateZip,omitempty"`
}

// LineTotal returns quantity × unit price.
func (b Bill) LineTotal() float64 {
	return b.Quantity * b.UnitPrice
}

// RecordID implements Record.
func (b Bill) RecordID() string { return b.ID }

// RecordDate implements Record.
func (b Bill) RecordDate() string { return b.Date }

// BillView is a Bill with its derived total, as returned by list endpoints.
type BillView struct {
	Bill
	Total float64 `json:"total"`
}

// NewBillView attaches the derived total to b.
func NewBillView(b Bill) BillView {
	return BillView{Bill: b, Total: b.LineTotal()}
}

// Expense is one outgoing payment entry.
type Expense struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Vendor        string  `json:"vendor"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Notes         string  `json:"notes"`
}

// RecordID implements Record.
func (e Expense) RecordID() string { return e.ID }

// RecordDate implements Record.
func (e Expense) RecordDate() string { return e.Date }

// Record is the shape shared by both ledger collections.
type Record interface {
	RecordID() string
	RecordDate() string
}

// Ledger is the single persisted document. Both slices are never nil once
// the document has been through Normalize.
type Ledger struct {
	Bills    []Bill    `json:"bills"`
	Expenses []Expense `json:"expenses"`
}

// NewLedger returns an empty document.
func NewLedger() *Ledger {
	return &Ledger{Bills: []Bill{}, Expenses: []Expense{}}
}

// Normalize replaces nil collections with empty ones.
func (l *Ledger) Normalize() {
	if l.Bills == nil {
		l.Bills = []Bill{}
	}
	if l.Expenses == nil {
		l.Expenses = []Expense{}
	}
}

// Clone returns a deep copy of the document.
func (l *Ledger) Clone() *Ledger {
	out := &Ledger{
		Bills:    make([]Bill, len(l.Bills)),
		Expenses: make([]Expense, len(l.Expenses)),
	}
	copy(out.Bills, l.Bills)
	copy(out.Expenses, l.Expenses)
	return out
}

// InvoiceGroup is the derived view of bills sharing an invoice number. Date
// and CustomerName come from the first member; Consistent is false when
// later members disagree with it.
type InvoiceGroup struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	Date          string  `json:"date"`
	CustomerName  string  `json:"customerName"`
	ItemCount     int     `json:"itemCount"`
	Total         float64 `json:"total"`
	Consistent    bool    `json:"consistent"`
}

// BillTotals summarizes a (filtered) list of bills.
type BillTotals struct {
	Sales  float64 `json:"sales"`
	Paid   float64 `json:"paid"`
	Unpaid float64 `json:"unpaid"`
}

// ExpenseTotals summarizes a (filtered) list of expenses.
type ExpenseTotals struct {
	Total float64 `json:"total"`
}

// Snapshot is the all-time dashboard figure set.
type Snapshot struct {
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// LedgerStatus reports the state of the loaded document.
type LedgerStatus struct {
	Recovered    bool   `json:"recovered"`
	Found        bool   `json:"found"`
	StorageKey   string `json:"storageKey"`
	Driver       string `json:"driver"`
	BillCount    int    `json:"billCount"`
	ExpenseCount int    `json:"expenseCount"`
}
