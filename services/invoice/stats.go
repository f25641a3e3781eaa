package invoice

import (
	"math"

	"invoicely/models"
)

// safeAmount treats non-finite totals as 0, matching the coerce-or-zero
// policy of the totals computation.
func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ComputeStatistics reduces an invoice collection to counts and sums by
// status. All sums are 0 for an empty collection. Invoices in an unknown
// status still count toward TotalAmount but none of the status buckets.
func ComputeStatistics(invoices []models.Invoice) models.InvoiceStats {
	stats := models.InvoiceStats{
		TotalInvoices: int64(len(invoices)),
	}

	for _, inv := range invoices {
		amount := safeAmount(inv.Total)
		stats.TotalAmount += amount

		switch inv.Status {
		case models.StatusPaid:
			stats.PaidAmount += amount
		case models.StatusPending:
			stats.PendingAmount += amount
		case models.StatusUnpaid:
			stats.OverdueAmount += amount
		}
	}
	return stats
}
