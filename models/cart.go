package models

// CartLineItem is one product+variant combination in the cart. Title, slug,
// image and price are copied from the product at add time and do not track
// later catalog changes. The line ID is generated at creation so the same
// product can appear on several lines with different variant selections.
type CartLineItem struct {
	ID        string            `json:"id"`
	ProductID string            `json:"productId"`
	Title     string            `json:"title"`
	Slug      string            `json:"slug"`
	Image     string            `json:"image"`
	Price     float64           `json:"price"`
	Variant   map[string]string `json:"variant,omitempty"`
	Qty       int               `json:"qty"`
}
