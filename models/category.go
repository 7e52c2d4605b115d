package models

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
}

type Testimonial struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Quote  string  `json:"quote"`
	Rating float64 `json:"rating"`
}
