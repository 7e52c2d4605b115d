package models

import "time"

// Variant is one configurable axis of a product (e.g. Size -> S/M/L).
type Variant struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is a catalog entry. The catalog is loaded once per session and
// products are immutable after that, so stores copy the fields they need
// instead of holding references.
type Product struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	CompareAtPrice float64   `json:"compareAtPrice,omitempty"`
	Images         []string  `json:"images"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	Rating         float64   `json:"rating"`
	Stock          int       `json:"stock"`
	Featured       bool      `json:"featured,omitempty"`
	Variants       []Variant `json:"variants,omitempty"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

// MainImage returns the first image, or "" for malformed data.
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// DiscountPercent returns the discount implied by CompareAtPrice, rounded
// down to a whole percent. Data where CompareAtPrice <= Price is tolerated
// and simply reports no discount.
func (p Product) DiscountPercent() int {
	if p.CompareAtPrice <= p.Price || p.CompareAtPrice <= 0 {
		return 0
	}
	return int((p.CompareAtPrice - p.Price) / p.CompareAtPrice * 100)
}

// CreatedTime parses CreatedAt. Unparseable timestamps sort as the zero
// time rather than failing the whole query.
func (p Product) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
