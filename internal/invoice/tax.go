// Package invoice turns a bill into a GST tax invoice: the tax computation,
// the amount in words, the document model, its page layout and the rendered
// PDF.
package invoice

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxPolicy holds the CGST and SGST rates in percent.
type TaxPolicy struct {
	CGSTRate decimal.Decimal
	SGSTRate decimal.Decimal
}

// NewTaxPolicy builds a policy from percent rates.
func NewTaxPolicy(cgst, sgst float64) TaxPolicy {
	return TaxPolicy{
		CGSTRate: decimal.NewFromFloat(cgst),
		SGSTRate: decimal.NewFromFloat(sgst),
	}
}

// DefaultTaxPolicy is 9% CGST plus 9% SGST.
func DefaultTaxPolicy() TaxPolicy {
	return NewTaxPolicy(9, 9)
}

// Computation is the tax breakdown of one invoice. No value is rounded;
// rounding happens only when amounts are formatted.
type Computation struct {
	CGSTRate    string  `json:"cgstRate"`
	SGSTRate    string  `json:"sgstRate"`
	Amount      float64 `json:"amount"`
	CGST        float64 `json:"cgstAmount"`
	SGST        float64 `json:"sgstAmount"`
	TotalTax    float64 `json:"totalTax"`
	Freight     float64 `json:"freight"`
	TotalAmount float64 `json:"totalAmount"`
}

// Compute applies policy to quantity × unitPrice and adds freight.
func Compute(quantity, unitPrice, freight float64, policy TaxPolicy) Computation {
	amount := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice))
	cgst := amount.Mul(policy.CGSTRate).Div(hundred)
	sgst := amount.Mul(policy.SGSTRate).Div(hundred)
	totalTax := cgst.Add(sgst)
	fr := decimal.NewFromFloat(freight)
	total := amount.Add(totalTax).Add(fr)

	return Computation{
		CGSTRate:    policy.CGSTRate.String(),
		SGSTRate:    policy.SGSTRate.String(),
		Amount:      amount.InexactFloat64(),
		CGST:        cgst.InexactFloat64(),
		SGST:        sgst.InexactFloat64(),
		TotalTax:    totalTax.InexactFloat64(),
		Freight:     fr.InexactFloat64(),
		TotalAmount: total.InexactFloat64(),
	}
}
