package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
)

func testCompany() domain.Company {
	return domain.Company{
		Name: "KSP POLYMERS",
		AddressLines: []string{
			"Plot No 233, Sy No: 682,693 to",
			"697,699,701,702,704 to 709,711 to 717",
			"TIF MSME Green Industrial Park, Dandu Malkapur(V)",
			"Choutuppal (M), Yadadri(D), Telangana - 508252",
		},
		GSTIN:           "36BEUPC7238H1Z5",
		BankAccountName: "KSP POLYMERS",
		BankName:        "UNION BANK",
		BankBranch:      "KOTHAPET",
		IFSC:            "UBIN0810925",
		AccountNumber:   "0192110100000186",
	}
}

func testSettings() domain.InvoiceSettings {
	return domain.InvoiceSettings{
		Title:           "TAX INVOICE",
		Jurisdiction:    "SUBJECT TO HYDERABAD JURISDICTION",
		DefaultItemCode: "JB",
	}
}

func TestBuildDocument(t *testing.T) {
	bill := domain.Bill{
		ID: "abcdef123456", Date: "2025-04-01", CustomerName: "Sri Ram Traders",
		ProductName: "Plastic Bottle 1 Liter", Quantity: 10, UnitPrice: 100,
		BillToAddress1: "Main Road", BillToGST: "36AAAAA0000A1Z5", ShipToAddress1: "Godown 4",
		VehicleNo: "TS08AB1234",
	}

	doc := BuildDocument(bill, testCompany(), testSettings(), DefaultTaxPolicy())

	assert.Equal(t, "INV-abcdef", doc.InvoiceNumber)
	assert.Equal(t, "2025-04-01", doc.InvoiceDate)
	assert.Equal(t, "2025-04-01", doc.DeliveryDate)
	assert.Equal(t, "TS08AB1234", doc.VehicleNo)
	assert.Equal(t, "Sri Ram Traders", doc.BillTo.Name)
	assert.Equal(t, "36AAAAA0000A1Z5", doc.BillTo.GST)
	assert.Equal(t, "Sri Ram Traders", doc.ShipTo.Name)
	assert.Empty(t, doc.ShipTo.GST)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, LineItem{
		Item: "JB", Description: "Plastic Bottle 1 Liter", Quantity: 10, Rate: 100, Amount: 1000,
	}, doc.Items[0])

	assert.Equal(t, 1180.0, doc.Tax.TotalAmount)
	assert.Equal(t, "One Thousand One Hundred Eighty Only", doc.AmountInWords)
}

func TestBuildDocument_ExplicitFields(t *testing.T) {
	bill := domain.Bill{
		ID: "b1", InvoiceNumber: " KSP/24-25/001 ", ItemCode: "B1L", Description: "1L PET bottle",
		HSN: "3923", Quantity: 1, UnitPrice: 10, Freight: 5,
	}

	doc := BuildDocument(bill, testCompany(), testSettings(), DefaultTaxPolicy())

	assert.Equal(t, "KSP/24-25/001", doc.InvoiceNumber)
	assert.Equal(t, "B1L", doc.Items[0].Item)
	assert.Equal(t, "1L PET bottle", doc.Items[0].Description)
	assert.Equal(t, "3923", doc.Items[0].HSN)
	assert.Equal(t, 5.0, doc.Tax.Freight)
	assert.InDelta(t, 16.8, doc.Tax.TotalAmount, 1e-9)
}

func TestFallbackNumber(t *testing.T) {
	assert.Equal(t, "INV-abc", FallbackNumber("abc"))
	assert.Equal(t, "INV-123456", FallbackNumber("1234567890"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "KSP-001.pdf", Filename("KSP-001"))
	assert.Equal(t, "KSP_24-25_001.pdf", Filename("KSP/24-25/001"))
	assert.Equal(t, "invoice.pdf", Filename(""))
	assert.Equal(t, "invoice.pdf", Filename("///"))
}
