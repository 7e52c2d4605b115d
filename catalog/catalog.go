package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/junaidrashid-git/storefront-api/models"
)

// Catalog holds the session-immutable product data. It is loaded once at
// startup; everything downstream reads it without locking.
type Catalog struct {
	products     []models.Product
	categories   []models.Category
	banners      []models.Banner
	testimonials []models.Testimonial
	bySlug       map[string]int
	byID         map[string]int
}

// Load reads products.json, categories.json, banners.json and
// testimonials.json from source, which is either a directory path or an
// HTTP base URL. Products are required; the content files are optional and
// default to empty lists.
func Load(source string) (*Catalog, error) {
	cat := &Catalog{bySlug: make(map[string]int), byID: make(map[string]int)}

	if err := readResource(source, "products.json", &cat.products); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if err := readResource(source, "categories.json", &cat.categories); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	// Banner/testimonial content is optional storefront dressing.
	if err := readResource(source, "banners.json", &cat.banners); err != nil {
		cat.banners = nil
	}
	if err := readResource(source, "testimonials.json", &cat.testimonials); err != nil {
		cat.testimonials = nil
	}

	cat.index()
	return cat, nil
}

// New builds a catalog directly from in-memory data. Used by tests and by
// callers that already hold the decoded JSON.
func New(products []models.Product, categories []models.Category) *Catalog {
	cat := &Catalog{products: products, categories: categories}
	cat.index()
	return cat
}

func (c *Catalog) index() {
	c.bySlug = make(map[string]int)
	c.byID = make(map[string]int)
	for i, p := range c.products {
		c.bySlug[p.Slug] = i
		c.byID[p.ID] = i
	}
}

func readResource(source, name string, v any) error {
	var data []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(strings.TrimSuffix(source, "/") + "/" + name)
	} else {
		data, err = os.ReadFile(filepath.Join(source, name))
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (c *Catalog) Products() []models.Product         { return c.products }
func (c *Catalog) Categories() []models.Category      { return c.categories }
func (c *Catalog) Banners() []models.Banner           { return c.banners }
func (c *Catalog) Testimonials() []models.Testimonial { return c.testimonials }

// BySlug looks a product up by its URL slug. A miss is a normal absence,
// not an error.
func (c *Catalog) BySlug(slug string) (models.Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// ByID looks a product up by its catalog ID.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}
