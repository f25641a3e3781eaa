package invoice

import (
	"testing"

	"invoicely/models"

	"github.com/stretchr/testify/require"
)

func item(name string, qty, price, tax float64) LineItemInput {
	return LineItemInput{
		Name:       name,
		Quantity:   models.FlexNumber(qty),
		UnitPrice:  models.FlexNumber(price),
		TaxPercent: models.FlexNumber(tax),
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItemInput
		wantSubtotal float64
		wantTaxTotal float64
		wantTotal    float64
	}{
		{
			name:         "empty sequence yields zeros",
			items:        nil,
			wantSubtotal: 0,
			wantTaxTotal: 0,
			wantTotal:    0,
		},
		{
			name:         "single item no tax",
			items:        []LineItemInput{item("consulting", 4, 150, 0)},
			wantSubtotal: 600,
			wantTaxTotal: 0,
			wantTotal:    600,
		},
		{
			name: "two taxed items",
			items: []LineItemInput{
				item("laptop", 2, 999, 8),
				item("mouse", 3, 25, 8),
			},
			wantSubtotal: 2073,
			wantTaxTotal: 165.84,
			wantTotal:    2238.84,
		},
		{
			name: "mixed tax rates",
			items: []LineItemInput{
				item("design", 10, 80, 16),
				item("hosting", 1, 240, 0),
			},
			wantSubtotal: 1040,
			wantTaxTotal: 128,
			wantTotal:    1168,
		},
		{
			name: "zero quantity contributes nothing",
			items: []LineItemInput{
				item("placeholder", 0, 500, 20),
				item("real work", 1, 100, 0),
			},
			wantSubtotal: 100,
			wantTaxTotal: 0,
			wantTotal:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, totals := ComputeTotals(tt.items)
			require.Len(t, lines, len(tt.items))
			require.InDelta(t, tt.wantSubtotal, totals.Subtotal, 1e-9)
			require.InDelta(t, tt.wantTaxTotal, totals.TaxTotal, 1e-9)
			require.InDelta(t, tt.wantTotal, totals.Total, 1e-9)
			require.InDelta(t, totals.Subtotal+totals.TaxTotal, totals.Total, 1e-9)
		})
	}
}

func TestComputeTotalsPerLine(t *testing.T) {
	lines, _ := ComputeTotals([]LineItemInput{
		item("laptop", 2, 999, 8),
		item("mouse", 3, 25, 8),
	})

	require.Equal(t, "laptop", lines[0].Name)
	require.InDelta(t, 1998.0, lines[0].Total, 1e-9)
	require.InDelta(t, 75.0, lines[1].Total, 1e-9)
	// Line totals are not tax-inclusive.
	require.InDelta(t, 2.0, lines[0].Quantity, 1e-9)
	require.InDelta(t, 8.0, lines[0].TaxPercent, 1e-9)
}

func TestComputeTotalsReorderInvariance(t *testing.T) {
	forward := []LineItemInput{
		item("a", 2, 999, 8),
		item("b", 3, 25, 8),
		item("c", 1.5, 33.33, 16),
	}
	reversed := []LineItemInput{forward[2], forward[1], forward[0]}

	_, t1 := ComputeTotals(forward)
	_, t2 := ComputeTotals(reversed)

	require.InDelta(t, t1.Subtotal, t2.Subtotal, 1e-9)
	require.InDelta(t, t1.TaxTotal, t2.TaxTotal, 1e-9)
	require.InDelta(t, t1.Total, t2.Total, 1e-9)
}

func TestComputeTotalsCoercedInput(t *testing.T) {
	// A quantity that failed to parse arrives as zero and drops the line
	// from the sums without failing the computation.
	items := []LineItemInput{
		{Name: "bad row", Quantity: 0, UnitPrice: 100, TaxPercent: 8},
		item("good row", 2, 50, 0),
	}

	lines, totals := ComputeTotals(items)
	require.InDelta(t, 100.0, totals.Subtotal, 1e-9)
	require.InDelta(t, 0.0, totals.TaxTotal, 1e-9)
	require.InDelta(t, 0.0, lines[0].Total, 1e-9)
}

func TestComputeTotalsDeterministic(t *testing.T) {
	items := []LineItemInput{
		item("x", 7, 13.37, 5),
		item("y", 3, 0.1, 21),
	}
	_, first := ComputeTotals(items)
	_, second := ComputeTotals(items)
	require.Equal(t, first, second)
}
