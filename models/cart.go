package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DeliveryFee is charged once per non-empty cart.
var DeliveryFee = decimal.RequireFromString("2.50")

// Cart is derived from a user's order lines and never persisted.
type Cart struct {
	Lines       []OrderLine     `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// NewCart prices lines. The input slice is not modified; the cart holds its
// own copy ordered most recent first.
func NewCart(lines []OrderLine) Cart {
	sorted := make([]OrderLine, len(lines))
	copy(sorted, lines)
	SortByRecency(sorted)

	subtotal := decimal.Zero
	for _, l := range sorted {
		subtotal = subtotal.Add(l.LineTotal())
	}
	fee := decimal.Zero
	if len(sorted) > 0 {
		fee = DeliveryFee
	}
	return Cart{
		Lines:       sorted,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
}

// SortByRecency orders lines by CreatedAt descending. A zero CreatedAt counts
// as the epoch, so lines without a timestamp come last. Ties fall back to ID.
func SortByRecency(lines []OrderLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		ti, tj := unixOrZero(lines[i]), unixOrZero(lines[j])
		if ti != tj {
			return ti > tj
		}
		return lines[i].ID < lines[j].ID
	})
}

func unixOrZero(l OrderLine) int64 {
	if l.CreatedAt.IsZero() {
		return 0
	}
	return l.CreatedAt.UnixNano()
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool { return len(c.Lines) == 0 }
