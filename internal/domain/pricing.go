package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PriceLine is one itemized row of a priced draft order.
type PriceLine struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
	Qty    int    `json:"qty"`
	Amount int    `json:"amount"` // Qty × unit price, in dollars
}

// UnitPrice derives the integer dollar price of a catalog price string.
// Range prices ("5$–20$" or "$5–$20") resolve to the lower bound.
// Unparseable strings price as zero.
func UnitPrice(price string) int {
	lower := price
	if idx := strings.Index(price, "–"); idx >= 0 {
		lower = price[:idx]
	}
	lower = strings.ReplaceAll(lower, "$", "")
	lower = strings.TrimSpace(lower)

	n, err := strconv.Atoi(lower)
	if err != nil {
		return 0
	}
	return n
}

// ComputeTotal prices a draft order: base length price plus the sum of
// unit price × quantity over add-ons with a positive quantity. Pure and
// recomputed on demand; no caching.
func ComputeTotal(catalog Catalog, lengthID string, addonQty map[string]int) (int, []PriceLine) {
	total := 0

	if base := catalog.FindByID(lengthID); base != nil {
		total += UnitPrice(base.Price)
	}

	lines := make([]PriceLine, 0, len(addonQty))
	// Itemize in catalog order so output is deterministic.
	for _, item := range catalog.Addons() {
		qty, ok := addonQty[item.ID]
		if !ok || qty <= 0 {
			continue
		}
		amount := UnitPrice(item.Price) * qty
		total += amount

		name := item.Name
		if qty > 1 {
			name = fmt.Sprintf("%dx %s", qty, item.Name)
		}
		lines = append(lines, PriceLine{
			ItemID: item.ID,
			Name:   name,
			Qty:    qty,
			Amount: amount,
		})
	}

	return total, lines
}

// ClampQuantity bounds an add-on quantity to the item's legal range:
// toggles to {0, 1}, counters to [0, MaxAddonQuantity].
func ClampQuantity(kind ItemKind, qty int) int {
	if qty < 0 {
		return 0
	}
	if kind == KindToggle && qty > 1 {
		return 1
	}
	if qty > MaxAddonQuantity {
		return MaxAddonQuantity
	}
	return qty
}
