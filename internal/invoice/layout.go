package invoice

import (
	"fmt"

	"billbook/internal/money"
)

// A4 portrait, millimetres.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	margin     = 14.0
	linePitch  = 4.2
	tableY     = 104.0
	tableRowH  = 7.6
	amountX    = 190.0
	summaryX   = 120.0
	footerY    = 288.0
	bodySize   = 10.0
	smallSize  = 9.0
	headerFill = 245
)

// Align is the horizontal anchor of a text element.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ElementKind selects how an element is drawn.
type ElementKind string

const (
	KindText ElementKind = "text"
	KindLine ElementKind = "line"
	KindRect ElementKind = "rect"
)

// Element is one drawing instruction. Text elements use X/Y as the
// baseline anchor; lines run from X/Y to X2/Y2; rects span W×H from X/Y.
type Element struct {
	Kind  ElementKind
	X, Y  float64
	X2    float64
	Y2    float64
	W, H  float64
	Text  string
	Size  float64
	Bold  bool
	Align Align
	Fill  bool
}

// Region is a named group of elements such as the metadata box or the
// item table.
type Region struct {
	Name     string
	Elements []Element
}

// Layout is a fully positioned invoice page.
type Layout struct {
	Width   float64
	Height  float64
	Regions []Region
}

// Region returns the region with name, if present.
func (l *Layout) Region(name string) (Region, bool) {
	for _, r := range l.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

func text(x, y float64, s string, size float64, bold bool, align Align) Element {
	return Element{Kind: KindText, X: x, Y: y, Text: s, Size: size, Bold: bold, Align: align}
}

func line(x1, y1, x2, y2 float64) Element {
	return Element{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2}
}

func rect(x, y, w, h float64, fill bool) Element {
	return Element{Kind: KindRect, X: x, Y: y, W: w, H: h, Fill: fill}
}

// Table columns: header and width. The widths span the printable width.
var tableColumns = []struct {
	title string
	width float64
}{
	{"Sl No", 14},
	{"Item", 22},
	{"Description", 56},
	{"HSN", 20},
	{"Qty", 18},
	{"Rate", 24},
	{"Amount (INR)", 28},
}

// Compose positions every part of doc on a single A4 page. Content that
// does not fit is not reflowed.
func Compose(doc Document) Layout {
	l := Layout{Width: PageWidth, Height: PageHeight}

	l.Regions = append(l.Regions,
		Region{Name: "title", Elements: []Element{
			text(PageWidth/2, 14, doc.Title, 16, true, AlignCenter),
		}},
		Region{Name: "company", Elements: []Element{
			text(margin, 26, firstNonBlank(doc.Company.Name, "KSP POLYMERS"), 18, true, AlignLeft),
		}},
		composeMeta(doc),
	)
	l.Regions = append(l.Regions, composeParties(doc)...)

	table, tableEnd := composeTable(doc)
	l.Regions = append(l.Regions, table)

	after := tableEnd + 6
	l.Regions = append(l.Regions,
		composeSummary(doc, after),
		Region{Name: "words", Elements: []Element{
			text(margin, after+20, "Total in words after round off:", smallSize, false, AlignLeft),
			text(margin, after+25, doc.AmountInWords, smallSize, true, AlignLeft),
		}},
	)

	bankY := after + 32
	l.Regions = append(l.Regions,
		composeBank(doc, bankY),
		Region{Name: "signatory", Elements: []Element{
			rect(114, bankY, 82, 28, false),
			text(155, bankY+10, "M/s "+firstNonBlank(doc.Company.Name, "KSP POLYMERS"), bodySize, true, AlignCenter),
			text(155, bankY+24, "Authorised Signatory", bodySize, false, AlignCenter),
		}},
	)
	if doc.Jurisdiction != "" {
		l.Regions = append(l.Regions, Region{Name: "jurisdiction", Elements: []Element{
			text(margin, footerY, doc.Jurisdiction, smallSize, false, AlignLeft),
		}})
	}
	return l
}

func composeMeta(doc Document) Region {
	const (
		boxX = 120.0
		boxY = 18.0
		boxW = 76.0
		boxH = 36.0
	)
	rows := [][2]string{
		{"Invoice No", orPlaceholder(doc.InvoiceNumber)},
		{"Invoice Date", orPlaceholder(doc.InvoiceDate)},
		{"Delivery Date", orPlaceholder(doc.DeliveryDate)},
		{"Amount", money.FormatAmount(doc.Tax.Amount)},
		{"Tax", money.FormatAmount(doc.Tax.TotalTax)},
		{"Freight", money.FormatAmount(doc.Tax.Freight)},
		{"Total Amount", money.FormatAmount(doc.Tax.TotalAmount)},
		{"Vehicle No", orPlaceholder(doc.VehicleNo)},
	}

	r := Region{Name: "meta", Elements: []Element{rect(boxX, boxY, boxW, boxH, false)}}
	y := boxY + 6
	for _, row := range rows {
		r.Elements = append(r.Elements,
			text(boxX+2, y, row[0], bodySize, false, AlignLeft),
			text(boxX+42, y, row[1], bodySize, false, AlignLeft),
			line(boxX, y+1.5, boxX+boxW, y+1.5),
		)
		y += linePitch
	}
	return r
}

func composeParties(doc Document) []Region {
	const (
		top  = 58.0
		boxH = 40.0
	)
	colW := (PageWidth - 2*margin) / 3

	box := func(name string, x float64, title string, lines []string) Region {
		r := Region{Name: name, Elements: []Element{
			rect(x, top, colW, boxH, false),
			text(x+colW/2, top+6, title, bodySize, true, AlignCenter),
		}}
		y := top + 12
		for _, l := range lines {
			r.Elements = append(r.Elements, text(x+3, y, l, bodySize, false, AlignLeft))
			y += linePitch
		}
		return r
	}

	addr := doc.Company.AddressLines
	companyLines := make([]string, 4, 5)
	copy(companyLines, addr)
	companyLines = append(companyLines, "GST: "+orPlaceholder(doc.Company.GSTIN))

	return []Region{
		box("billTo", margin, "Bill To", []string{
			doc.BillTo.Name,
			doc.BillTo.Address1,
			doc.BillTo.Address2,
			doc.BillTo.CityStateZip,
			"GST: " + orPlaceholder(doc.BillTo.GST),
		}),
		box("shipTo", margin+colW, "Ship To", []string{
			doc.ShipTo.Name,
			doc.ShipTo.Address1,
			doc.ShipTo.Address2,
			doc.ShipTo.CityStateZip,
		}),
		box("companyAddress", margin+2*colW, "Company Address", companyLines),
	}
}

// composeTable lays out the item grid and returns the y where it ends.
func composeTable(doc Document) (Region, float64) {
	r := Region{Name: "items"}

	row := func(y float64, cells []string, header bool) {
		x := margin
		for i, col := range tableColumns {
			r.Elements = append(r.Elements,
				rect(x, y, col.width, tableRowH, header),
				text(x+2, y+tableRowH/2+1.2, cells[i], smallSize, header, AlignLeft),
			)
			x += col.width
		}
	}

	headers := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		headers[i] = col.title
	}
	y := tableY
	row(y, headers, true)
	y += tableRowH

	for i, it := range doc.Items {
		row(y, []string{
			fmt.Sprintf("%d", i+1),
			orPlaceholder(it.Item),
			orPlaceholder(it.Description),
			orPlaceholder(it.HSN),
			money.FormatNumber(it.Quantity),
			money.FormatAmount(it.Rate),
			money.FormatAmount(it.Amount),
		}, false)
		y += tableRowH
	}
	return r, y
}

func composeSummary(doc Document, y float64) Region {
	t := doc.Tax
	return Region{Name: "summary", Elements: []Element{
		text(summaryX, y, "CGST @ "+t.CGSTRate+"%", bodySize, false, AlignLeft),
		text(amountX, y, money.FormatAmount(t.CGST), bodySize, false, AlignRight),
		text(summaryX, y+5, "SGST @ "+t.SGSTRate+"%", bodySize, false, AlignLeft),
		text(amountX, y+5, money.FormatAmount(t.SGST), bodySize, false, AlignRight),
		text(summaryX, y+12, "Total Amount", bodySize, true, AlignLeft),
		text(amountX, y+12, money.FormatAmount(t.TotalAmount), bodySize, true, AlignRight),
	}}
}

func composeBank(doc Document, y float64) Region {
	c := doc.Company
	r := Region{Name: "bank", Elements: []Element{
		rect(margin, y, 95, 28, false),
		text(16, y+6, "Bank Details", bodySize, true, AlignLeft),
	}}
	lines := []string{
		"Account Name: " + orPlaceholder(c.BankAccountName),
		"Bank Name: " + orPlaceholder(c.BankName),
		"Branch: " + orPlaceholder(c.BankBranch),
		"IFSC: " + orPlaceholder(c.IFSC),
		"Account No: " + orPlaceholder(c.AccountNumber),
	}
	ly := y + 12
	for _, l := range lines {
		r.Elements = append(r.Elements, text(16, ly, l, bodySize, false, AlignLeft))
		ly += linePitch
	}
	return r
}
