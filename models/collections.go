package models

// Lightweight projections of a Product kept by the wishlist, compare and
// recently-viewed stores. Each store holds at most one entry per product ID.

type WishlistItem struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Slug   string  `json:"slug"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Rating float64 `json:"rating"`
	Stock  int     `json:"stock"`
}

type CompareItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
}

type RecentItem struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Slug  string  `json:"slug"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func WishlistItemFrom(p Product) WishlistItem {
	return WishlistItem{
		ID:     p.ID,
		Title:  p.Title,
		Slug:   p.Slug,
		Price:  p.Price,
		Image:  p.MainImage(),
		Rating: p.Rating,
		Stock:  p.Stock,
	}
}

func CompareItemFrom(p Product) CompareItem {
	return CompareItem{
		ID:       p.ID,
		Title:    p.Title,
		Slug:     p.Slug,
		Price:    p.Price,
		Image:    p.MainImage(),
		Rating:   p.Rating,
		Category: p.Category,
	}
}

func RecentItemFrom(p Product) RecentItem {
	return RecentItem{
		ID:    p.ID,
		Title: p.Title,
		Slug:  p.Slug,
		Price: p.Price,
		Image: p.MainImage(),
	}
}
