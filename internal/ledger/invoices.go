package ledger

import "billbook/internal/domain"

// GroupInvoices partitions bills by exact invoice number, in order of first
// appearance. Bills without an invoice number form one group keyed "".
func GroupInvoices(bills []domain.Bill) []domain.InvoiceGroup {
	index := make(map[string]int)
	groups := make([]domain.InvoiceGroup, 0)

	for i := range bills {
		b := &bills[i]
		pos, ok := index[b.InvoiceNumber]
		if !ok {
			index[b.InvoiceNumber] = len(groups)
			groups = append(groups, domain.InvoiceGroup{
				InvoiceNumber: b.InvoiceNumber,
				Date:          b.Date,
				CustomerName:  b.CustomerName,
				ItemCount:     1,
				Total:         b.LineTotal(),
				Consistent:    true,
			})
			continue
		}
		g := &groups[pos]
		g.ItemCount++
		g.Total += b.LineTotal()
		if b.CustomerName != g.CustomerName || b.Date != g.Date {
			g.Consistent = false
		}
	}
	return groups
}
