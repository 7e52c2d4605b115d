package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/stores"
)

type WishlistInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(wishlist *stores.Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, wishlist.Items())
	}
}

// POST /user/wishlist
func AddWishlistItem(cat *catalog.Catalog, wishlist *stores.Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		p, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		wishlist.AddItem(models.WishlistItemFrom(p))
		c.JSON(http.StatusOK, wishlist.Items())
	}
}

// POST /user/wishlist/toggle
func ToggleWishlistItem(cat *catalog.Catalog, wishlist *stores.Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		p, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		wishlist.Toggle(models.WishlistItemFrom(p))
		c.JSON(http.StatusOK, gin.H{"in_wishlist": wishlist.Contains(p.ID)})
	}
}

// DELETE /user/wishlist/:product_id
func DeleteWishlistItem(wishlist *stores.Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		wishlist.RemoveItem(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}
