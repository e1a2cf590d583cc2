package totals_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftbill/swiftbill-api/pkg/totals"
)

const epsilon = 1e-9

func TestComputeLineNet(t *testing.T) {
	tests := []struct {
		name            string
		quantity        float64
		unitPrice       float64
		discountPercent float64
		taxPercent      float64
		want            float64
	}{
		{
			name:     "zero tax zero discount",
			quantity: 5, unitPrice: 100,
			want: 500,
		},
		{
			name:     "discount then tax on taxable base",
			quantity: 2, unitPrice: 100, discountPercent: 10, taxPercent: 18,
			// lineTotal=200, discount=20, taxable=180, tax=32.4
			want: 212.4,
		},
		{
			name: "all zero",
			want: 0,
		},
		{
			name:     "full discount",
			quantity: 3, unitPrice: 50, discountPercent: 100, taxPercent: 18,
			want: 0,
		},
		{
			name:     "fractional quantity",
			quantity: 1.5, unitPrice: 10,
			want: 15,
		},
		{
			name:     "NaN coerced to zero",
			quantity: math.NaN(), unitPrice: 100, taxPercent: 18,
			want: 0,
		},
		{
			name:     "NaN tax percent coerced to zero",
			quantity: 2, unitPrice: 100, taxPercent: math.NaN(),
			want: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := totals.ComputeLineNet(tt.quantity, tt.unitPrice, tt.discountPercent, tt.taxPercent)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestComputeLineNet_Monotonicity(t *testing.T) {
	base := totals.ComputeLineNet(2, 100, 10, 18)

	assert.GreaterOrEqual(t, totals.ComputeLineNet(3, 100, 10, 18), base, "non-decreasing in quantity")
	assert.GreaterOrEqual(t, totals.ComputeLineNet(2, 150, 10, 18), base, "non-decreasing in unit price")
	assert.LessOrEqual(t, totals.ComputeLineNet(2, 100, 20, 18), base, "non-increasing in discount")
	assert.GreaterOrEqual(t, base, 0.0)
}

func TestComputeDocumentTotals(t *testing.T) {
	lines := []totals.LineInput{
		{Quantity: 2, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 18},
		{Quantity: 1, UnitPrice: 49.99, TaxPercent: 5},
		{Quantity: 10, UnitPrice: 3.33, DiscountPercent: 2.5},
	}

	got := totals.ComputeDocumentTotals(lines)

	assert.InDelta(t, 200+49.99+33.3, got.Subtotal, epsilon)
	assert.InDelta(t, 20+0+33.3*0.025, got.TotalDiscount, epsilon)
	assert.InDelta(t, 32.4+49.99*0.05, got.TaxAmount, epsilon)
	assert.InDelta(t, got.Subtotal-got.TotalDiscount+got.TaxAmount, got.TotalAmount, epsilon)
}

func TestComputeDocumentTotals_Empty(t *testing.T) {
	got := totals.ComputeDocumentTotals(nil)
	assert.Equal(t, totals.DocumentTotals{}, got)

	got = totals.ComputeDocumentTotals([]totals.LineInput{})
	assert.Equal(t, totals.DocumentTotals{}, got)
}

func TestComputeDocumentTotals_Idempotent(t *testing.T) {
	lines := []totals.LineInput{
		{Quantity: 7, UnitPrice: 12.345, DiscountPercent: 3.75, TaxPercent: 12},
		{Quantity: 0.25, UnitPrice: 400, TaxPercent: 28},
	}

	first := totals.ComputeDocumentTotals(lines)
	second := totals.ComputeDocumentTotals(lines)
	assert.Equal(t, first, second, "recomputation over an unchanged list must be bit-identical")
}

// The grand total must equal the sum of per-line nets computed independently.
func TestComputeDocumentTotals_AggregationIdentity(t *testing.T) {
	cases := [][]totals.LineInput{
		nil,
		{{Quantity: 5, UnitPrice: 100}},
		{
			{Quantity: 2, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 18},
			{Quantity: 3, UnitPrice: 19.99, DiscountPercent: 5, TaxPercent: 12},
			{Quantity: 100, UnitPrice: 0.07, TaxPercent: 28},
			{Quantity: 1, UnitPrice: 999999.99, DiscountPercent: 0.5, TaxPercent: 0.25},
		},
	}

	for _, lines := range cases {
		var sum float64
		for _, l := range lines {
			sum += totals.ComputeLineNet(l.Quantity, l.UnitPrice, l.DiscountPercent, l.TaxPercent)
		}

		got := totals.ComputeDocumentTotals(lines)
		assert.InDelta(t, sum, got.TotalAmount, 1e-6)
	}
}

// Removing a line must produce the same totals as if it had never been added.
func TestComputeDocumentTotals_NoResidualState(t *testing.T) {
	lines := []totals.LineInput{
		{Quantity: 2, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 18},
		{Quantity: 5, UnitPrice: 40, TaxPercent: 5},
	}

	withBoth := totals.ComputeDocumentTotals(lines)
	require.NotZero(t, withBoth.TotalAmount)

	removed := totals.ComputeDocumentTotals(lines[:1])
	fresh := totals.ComputeDocumentTotals([]totals.LineInput{lines[0]})
	assert.Equal(t, fresh, removed)
}

func TestCatalogTaxAmount(t *testing.T) {
	tests := []struct {
		name         string
		sellingPrice float64
		taxPercent   float64
		taxIncluded  bool
		want         float64
	}{
		{
			name:         "inclusive back-calculation",
			sellingPrice: 118, taxPercent: 18, taxIncluded: true,
			// 118*18/118 == 18 exactly
			want: 18,
		},
		{
			name:         "exclusive",
			sellingPrice: 118, taxPercent: 18, taxIncluded: false,
			want: 21.24,
		},
		{
			name:         "zero tax inclusive",
			sellingPrice: 100, taxPercent: 0, taxIncluded: true,
			want: 0,
		},
		{
			name:         "zero price",
			sellingPrice: 0, taxPercent: 18, taxIncluded: true,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := totals.CatalogTaxAmount(tt.sellingPrice, tt.taxPercent, tt.taxIncluded)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 212.4, totals.Round2(212.4000000001))
	assert.Equal(t, 21.24, totals.Round2(21.2399999999))
	assert.Equal(t, 0.13, totals.Round2(0.125))
	assert.Equal(t, -0.13, totals.Round2(-0.125))
	assert.Equal(t, 0.0, totals.Round2(0))
}
