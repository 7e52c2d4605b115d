package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/models"
)

// GetProductBySlug returns a single product by its URL slug.
// URL param: /products/:slug
func GetProductBySlug(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product slug is required"})
			return
		}

		product, ok := cat.BySlug(slug)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetRelatedProducts returns up to 4 products from the same category.
// URL param: /products/:slug/related
func GetRelatedProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := cat.BySlug(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		related := catalog.Related(cat.Products(), product)
		if related == nil {
			related = []models.Product{}
		}
		c.JSON(http.StatusOK, related)
	}
}
