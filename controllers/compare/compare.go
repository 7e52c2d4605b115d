package compareControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/stores"
)

type CompareInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/compare
func GetCompareList(compare *stores.Compare) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, compare.Items())
	}
}

// POST /user/compare
func AddCompareItem(cat *catalog.Catalog, compare *stores.Compare) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CompareInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		p, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		// The full list is an explicit signal to the caller, not a silent drop.
		if err := compare.AddItem(models.CompareItemFrom(p)); err != nil {
			if errors.Is(err, stores.ErrCompareFull) {
				c.JSON(http.StatusConflict, gin.H{"error": "You can only compare up to 3 products"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to compare"})
			return
		}
		c.JSON(http.StatusOK, compare.Items())
	}
}

// DELETE /user/compare/:product_id
func DeleteCompareItem(compare *stores.Compare) gin.HandlerFunc {
	return func(c *gin.Context) {
		compare.RemoveItem(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Removed from compare"})
	}
}

// DELETE /user/compare
func ClearCompareList(compare *stores.Compare) gin.HandlerFunc {
	return func(c *gin.Context) {
		compare.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Compare list cleared"})
	}
}
