package catalog

import (
	"sort"
	"strings"

	"github.com/junaidrashid-git/storefront-api/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 12
)

// SearchParams are the query engine inputs. Zero/nil values mean "no
// constraint". Out-of-range page values are clamped, never rejected.
type SearchParams struct {
	Text      string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Sort      string
	Page      int
	PageSize  int
}

// ResultPage is one page of filtered, sorted products. Total counts all
// matches before pagination.
type ResultPage struct {
	Items      []models.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// Search filters, sorts and paginates the product list. It is a pure
// function of its inputs: the catalog slice is never mutated and ties keep
// their catalog order under every sort key.
func Search(products []models.Product, p SearchParams) ResultPage {
	filtered := make([]models.Product, 0, len(products))
	for _, prod := range products {
		if matches(prod, p) {
			filtered = append(filtered, prod)
		}
	}

	switch p.Sort {
	case "price-low":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price-high":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case "rating":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case "newest":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedTime().After(filtered[j].CreatedTime())
		})
	default: // "featured" and anything unrecognized
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Featured && !filtered[j].Featured })
	}

	page := p.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return ResultPage{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func matches(prod models.Product, p SearchParams) bool {
	if p.Text != "" && !textMatch(prod, p.Text) {
		return false
	}
	if p.Category != "" && !strings.EqualFold(prod.Category, NormalizeCategory(p.Category)) {
		return false
	}
	if p.MinPrice != nil && prod.Price < *p.MinPrice {
		return false
	}
	if p.MaxPrice != nil && prod.Price > *p.MaxPrice {
		return false
	}
	if p.MinRating != nil && prod.Rating < *p.MinRating {
		return false
	}
	return true
}

func textMatch(prod models.Product, text string) bool {
	q := strings.ToLower(text)
	if strings.Contains(strings.ToLower(prod.Title), q) ||
		strings.Contains(strings.ToLower(prod.Description), q) {
		return true
	}
	for _, tag := range prod.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// NormalizeCategory turns a URL slug into the label form used in product
// data: only the first dash becomes " & " ("home-living" -> "home & living").
func NormalizeCategory(slug string) string {
	return strings.Replace(strings.ToLower(slug), "-", " & ", 1)
}

// Suggest returns up to 5 distinct typeahead suggestions for text: matching
// titles first, then matching tags. Queries shorter than 2 characters give
// no suggestions.
func Suggest(products []models.Product, text string) []string {
	if len(text) < 2 {
		return nil
	}
	q := strings.ToLower(text)

	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] && len(out) < 5 {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) {
			add(p.Title)
		}
	}
	for _, p := range products {
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				add(tag)
			}
		}
	}
	return out
}

// Related returns up to 4 other products from the same category, in catalog
// order.
func Related(products []models.Product, prod models.Product) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.ID != prod.ID && p.Category == prod.Category {
			out = append(out, p)
			if len(out) == 4 {
				break
			}
		}
	}
	return out
}
