package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
)

// GET /products
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := catalog.SearchParams{
			Text:     c.Query("search"),
			Category: c.Query("category"),
			Sort:     c.DefaultQuery("sort", "featured"),
		}

		// Price/rating bounds; absence means unconstrained.
		if s := c.Query("min_price"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			params.MinPrice = &v
		}
		if s := c.Query("max_price"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			params.MaxPrice = &v
		}
		if s := c.Query("min_rating"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_rating"})
				return
			}
			params.MinRating = &v
		}

		// Page values are clamped inside Search, so non-numeric input just
		// falls back to the defaults.
		params.Page, _ = strconv.Atoi(c.Query("page"))
		params.PageSize, _ = strconv.Atoi(c.Query("page_size"))

		c.JSON(http.StatusOK, catalog.Search(cat.Products(), params))
	}
}

// GET /products/suggest
func GetSuggestions(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		suggestions := catalog.Suggest(cat.Products(), c.Query("q"))
		if suggestions == nil {
			suggestions = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
	}
}
