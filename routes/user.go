package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	compareControllers "github.com/junaidrashid-git/storefront-api/controllers/compare"
	eventControllers "github.com/junaidrashid-git/storefront-api/controllers/events"
	flagControllers "github.com/junaidrashid-git/storefront-api/controllers/flags"
	recentControllers "github.com/junaidrashid-git/storefront-api/controllers/recent"
	wishlistControllers "github.com/junaidrashid-git/storefront-api/controllers/wishlist"
	"github.com/junaidrashid-git/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, cat *catalog.Catalog, s Stores) {
	// Store change events
	r.GET("/ws", eventControllers.StoreEventsHandler(s.Hub))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(s.Cart))                   // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(cat, s.Cart))         // POST /user/cart
			cartGroup.PUT("/:line_id", cartControllers.UpdateCartItemQty(s.Cart)) // PUT /user/cart/:line_id
			cartGroup.DELETE("/:line_id", cartControllers.DeleteCartItem(s.Cart)) // DELETE /user/cart/:line_id
			cartGroup.DELETE("/", cartControllers.ClearCart(s.Cart))              // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(s.Wishlist))                    // GET /user/wishlist
			wishlistGroup.POST("/", wishlistControllers.AddWishlistItem(cat, s.Wishlist))          // POST /user/wishlist
			wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlistItem(cat, s.Wishlist)) // POST /user/wishlist/toggle
			wishlistGroup.DELETE("/:product_id", wishlistControllers.DeleteWishlistItem(s.Wishlist))
		}

		// ──────────────── Compare ────────────────
		compareGroup := userGroup.Group("/compare")
		{
			compareGroup.GET("/", compareControllers.GetCompareList(s.Compare))       // GET /user/compare
			compareGroup.POST("/", compareControllers.AddCompareItem(cat, s.Compare)) // POST /user/compare
			compareGroup.DELETE("/:product_id", compareControllers.DeleteCompareItem(s.Compare))
			compareGroup.DELETE("/", compareControllers.ClearCompareList(s.Compare)) // DELETE /user/compare
		}

		// ──────────────── Recently Viewed ────────────────
		recentGroup := userGroup.Group("/recent")
		{
			recentGroup.GET("/", recentControllers.GetRecentlyViewed(s.Recent))       // GET /user/recent
			recentGroup.POST("/", recentControllers.AddRecentlyViewed(cat, s.Recent)) // POST /user/recent
		}

		// ──────────────── Demo Mode ────────────────
		userGroup.GET("/demo-mode", flagControllers.GetDemoMode(s.Flags))            // GET /user/demo-mode
		userGroup.PUT("/demo-mode", flagControllers.SetDemoMode(s.Flags))            // PUT /user/demo-mode
		userGroup.POST("/demo-mode/toggle", flagControllers.ToggleDemoMode(s.Flags)) // POST /user/demo-mode/toggle
	}
}
