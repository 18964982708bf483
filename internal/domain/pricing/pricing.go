// internal/domain/pricing/pricing.go
package pricing

// TaxRatePercent is the single supported tax rate.
const TaxRatePercent = 10

// Line represents one priced line: a unit price in the smallest currency
// unit and a quantity.
type Line struct {
	UnitPrice int64
	Quantity  int
}

// Totals represents computed cart or order totals
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Calculate computes subtotal, tax and total for a set of lines using exact
// integer arithmetic. Both the live cart view and the order factory call
// this same function, so a displayed cart total always matches the total
// recorded on the order created from it.
func Calculate(lines []Line) Totals {
	var t Totals
	for _, line := range lines {
		t.Subtotal += line.UnitPrice * int64(line.Quantity)
	}
	t.Tax = t.Subtotal * TaxRatePercent / 100
	t.Total = t.Subtotal + t.Tax
	return t
}
