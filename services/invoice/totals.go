package invoice

import "invoicely/models"

// Totals is the derived money summary of an item sequence.
type Totals struct {
	Subtotal float64
	TaxTotal float64
	Total    float64
}

// ComputeTotals derives per-line totals and the invoice summary from the
// item inputs. Pure function: no I/O, identical input yields identical
// output, and reordering items does not change the sums.
//
//	subtotal = sum(quantity * unitPrice)
//	taxTotal = sum(quantity * unitPrice * taxPercent / 100)
//	total    = subtotal + taxTotal
//
// An empty sequence yields all zeros; upstream validation rejects empty
// items before persistence.
func ComputeTotals(items []LineItemInput) ([]models.LineItem, Totals) {
	lines := make([]models.LineItem, 0, len(items))
	var t Totals

	for _, in := range items {
		qty := in.Quantity.Float64()
		price := in.UnitPrice.Float64()
		tax := in.TaxPercent.Float64()

		lineTotal := qty * price
		t.Subtotal += lineTotal
		t.TaxTotal += lineTotal * tax / 100

		lines = append(lines, models.LineItem{
			Name:       in.Name,
			Quantity:   qty,
			UnitPrice:  price,
			TaxPercent: tax,
			Total:      lineTotal,
		})
	}

	t.Total = t.Subtotal + t.TaxTotal
	return lines, t
}
