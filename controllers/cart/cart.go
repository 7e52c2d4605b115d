package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/stores"
)

type CartItemInput struct {
	ProductID string            `json:"product_id" binding:"required"`
	Variant   map[string]string `json:"variant"`
	Qty       int               `json:"qty"`
}

type QtyInput struct {
	Qty int `json:"qty"`
}

// POST /user/cart
func AddCartItem(cat *catalog.Catalog, cart *stores.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		p, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		// Snapshot the product at add time; the line keeps these values even
		// if the catalog changes later.
		line := cart.AddItem(stores.CartLineBase{
			ProductID: p.ID,
			Title:     p.Title,
			Slug:      p.Slug,
			Image:     p.MainImage(),
			Price:     p.Price,
			Variant:   input.Variant,
		}, input.Qty)
		c.JSON(http.StatusCreated, line)
	}
}

// GET /user/cart
func GetCart(cart *stores.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items":    cart.Items(),
			"subtotal": cart.Subtotal(),
			"tax":      cart.Tax(),
			"total":    cart.Total(),
		})
	}
}

// PUT /user/cart/:line_id
func UpdateCartItemQty(cart *stores.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QtyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// qty <= 0 removes the line; a missing line is a no-op either way.
		cart.UpdateQty(c.Param("line_id"), input.Qty)
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /user/cart/:line_id
func DeleteCartItem(cart *stores.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.RemoveItem(c.Param("line_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(cart *stores.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
