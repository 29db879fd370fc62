package invoice

import (
	"regexp"
	"strings"

	"billbook/internal/domain"
)

// Placeholder is printed wherever optional text is missing.
const Placeholder = "-"

// Party is a bill-to or ship-to block.
type Party struct {
	Name         string `json:"name"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	CityStateZip string `json:"cityStateZip"`
	GST          string `json:"gst,omitempty"`
}

// LineItem is one row of the item table.
type LineItem struct {
	Item        string  `json:"item"`
	Description string  `json:"description"`
	HSN         string  `json:"hsn"`
	Quantity    float64 `json:"qty"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Document is everything printed on one tax invoice.
type Document struct {
	Title         string         `json:"title"`
	InvoiceNumber string         `json:"invoiceNo"`
	InvoiceDate   string         `json:"invoiceDate"`
	DeliveryDate  string         `json:"deliveryDate"`
	VehicleNo     string         `json:"vehicleNo"`
	Company       domain.Company `json:"company"`
	BillTo        Party          `json:"billTo"`
	ShipTo        Party          `json:"shipTo"`
	Items         []LineItem     `json:"items"`
	Tax           Computation    `json:"tax"`
	AmountInWords string         `json:"amountInWords"`
	Jurisdiction  string         `json:"jurisdiction"`
}

// BuildDocument derives the invoice for a single bill.
func BuildDocument(b domain.Bill, company domain.Company, settings domain.InvoiceSettings, policy TaxPolicy) Document {
	tax := Compute(b.Quantity, b.UnitPrice, b.Freight, policy)

	number := strings.TrimSpace(b.InvoiceNumber)
	if number == "" {
		number = FallbackNumber(b.ID)
	}

	itemCode := firstNonBlank(b.ItemCode, settings.DefaultItemCode)
	description := firstNonBlank(b.Description, b.ProductName)
	hsn := firstNonBlank(b.HSN, settings.DefaultHSN)

	return Document{
		Title:         firstNonBlank(settings.Title, "TAX INVOICE"),
		InvoiceNumber: number,
		InvoiceDate:   b.Date,
		DeliveryDate:  b.Date,
		VehicleNo:     b.VehicleNo,
		Company:       company,
		BillTo: Party{
			Name:         b.CustomerName,
			Address1:     b.BillToAddress1,
			Address2:     b.BillToAddress2,
			CityStateZip: b.BillToCityStateZip,
			GST:          b.BillToGST,
		},
		ShipTo: Party{
			Name:         b.CustomerName,
			Address1:     b.ShipToAddress1,
			Address2:     b.ShipToAddress2,
			CityStateZip: b.ShipToCityStateZip,
		},
		Items: []LineItem{{
			Item:        itemCode,
			Description: description,
			HSN:         hsn,
			Quantity:    b.Quantity,
			Rate:        b.UnitPrice,
			Amount:      tax.Amount,
		}},
		Tax:           tax,
		AmountInWords: AmountInWords(tax.TotalAmount),
		Jurisdiction:  settings.Jurisdiction,
	}
}

// FallbackNumber is the invoice number used for bills without one.
func FallbackNumber(id string) string {
	if len(id) > 6 {
		id = id[:6]
	}
	return "INV-" + id
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename is the download name of an invoice PDF.
func Filename(invoiceNo string) string {
	name := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(invoiceNo), "_"), "._")
	if name == "" {
		name = "invoice"
	}
	return name + ".pdf"
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
