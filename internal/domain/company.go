package domain

// Company is the seller profile printed on every invoice.
type Company struct {
	Name            string   `json:"name"`
	AddressLines    []string `json:"addressLines"`
	GSTIN           string   `json:"gstin"`
	BankAccountName string   `json:"bankAccountName"`
	BankName        string   `json:"bankName"`
	BankBranch      string   `json:"bankBranch"`
	IFSC            string   `json:"ifsc"`
	AccountNumber   string   `json:"accountNumber"`
}

// InvoiceSettings holds the fixed wording and fallbacks of the invoice
// document.
type InvoiceSettings struct {
	Title           string `json:"title"`
	Jurisdiction    string `json:"jurisdiction"`
	DefaultItemCode string `json:"defaultItemCode"`
	DefaultHSN      string `json:"defaultHsn"`
}
