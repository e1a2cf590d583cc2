// Package totals computes per-line net amounts and whole-document totals for
// commercial documents (invoices, quotations, purchases, credit/debit notes).
// Every document form used to re-derive this arithmetic independently; this is
// the single shared implementation.
package totals

import "math"

// LineInput holds the priced attributes of one document line.
type LineInput struct {
	Quantity        float64
	UnitPrice       float64
	DiscountPercent float64
	TaxPercent      float64
}

// DocumentTotals aggregates a document's lines.
type DocumentTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
}

// ComputeLineNet returns the payable amount for a single line after discount
// and tax. The computation order is fixed: line total, then discount on the
// line total, then tax on the discounted (taxable) base. No rounding is
// applied here; amounts are rounded only when they leave the calculator.
func ComputeLineNet(quantity, unitPrice, discountPercent, taxPercent float64) float64 {
	quantity = sanitize(quantity)
	unitPrice = sanitize(unitPrice)
	discountPercent = sanitize(discountPercent)
	taxPercent = sanitize(taxPercent)

	lineTotal := quantity * unitPrice
	discountAmount := lineTotal * discountPercent / 100
	taxableAmount := lineTotal - discountAmount
	taxAmount := taxableAmount * taxPercent / 100
	return taxableAmount + taxAmount
}

// ComputeDocumentTotals walks the full line list and aggregates subtotal,
// discount, tax and grand total. TotalAmount equals the sum of ComputeLineNet
// over the same lines. An empty list yields all-zero totals.
func ComputeDocumentTotals(lines []LineInput) DocumentTotals {
	var t DocumentTotals
	for _, l := range lines {
		quantity := sanitize(l.Quantity)
		unitPrice := sanitize(l.UnitPrice)
		discountPercent := sanitize(l.DiscountPercent)
		taxPercent := sanitize(l.TaxPercent)

		lineTotal := quantity * unitPrice
		discountAmount := lineTotal * discountPercent / 100
		taxableAmount := lineTotal - discountAmount

		t.Subtotal += lineTotal
		t.TotalDiscount += discountAmount
		t.TaxAmount += taxableAmount * taxPercent / 100
	}
	t.TotalAmount = t.Subtotal - t.TotalDiscount + t.TaxAmount
	return t
}

// CatalogTaxAmount returns the tax component of a catalog selling price.
// When taxIncluded is true the stored price already contains tax and the
// component is back-calculated; this inclusive formula applies only to
// catalog entries, never to document lines, which always treat unit price
// as tax-exclusive.
func CatalogTaxAmount(sellingPrice, taxPercent float64, taxIncluded bool) float64 {
	sellingPrice = sanitize(sellingPrice)
	taxPercent = sanitize(taxPercent)

	if taxIncluded {
		return sellingPrice * taxPercent / (100 + taxPercent)
	}
	return sellingPrice * taxPercent / 100
}

// Round2 rounds to two decimal places, half away from zero. Used at the
// persistence and response boundary only, not between lines.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
