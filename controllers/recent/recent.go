package recentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/stores"
)

type RecentInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/recent
func GetRecentlyViewed(recent *stores.Recent) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, recent.Items())
	}
}

// POST /user/recent
func AddRecentlyViewed(cat *catalog.Catalog, recent *stores.Recent) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RecentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		p, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		recent.AddItem(models.RecentItemFrom(p))
		c.JSON(http.StatusOK, recent.Items())
	}
}
