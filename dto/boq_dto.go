package dto

import "github.com/shopspring/decimal"

// BOQLineItem is one row of a bill-of-quantities document, as read from the
// source. The core only reads it; the consuming UI may edit quantities.
type BOQLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// ParsedBOQFields is the derived, read-only view of a BOQLineItem description.
// Any field may be empty; an empty field is "contributes nothing to scoring",
// never a failed match.
type ParsedBOQFields struct {
	ProductName string `json:"product_name"`
	Thickness   string `json:"thickness,omitempty"` // "<n>mm"
	Size        string `json:"size,omitempty"`      // "<w>x<h>[ feet]"
	Brand       string `json:"brand,omitempty"`
}

// Product is a catalog entity. Read-only input to this core.
type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Size         string          `json:"size"`
	Thickness    string          `json:"thickness"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	CurrentStock int             `json:"current_stock"`
}

// MatchResult is one scored catalog candidate for a BOQ line item.
// MatchedFields lists "FieldName: NN%" entries for explainability.
type MatchResult struct {
	ProductID     int      `json:"product_id"`
	Confidence    float64  `json:"confidence"` // 0-100
	MatchedFields []string `json:"matched_fields"`
}
