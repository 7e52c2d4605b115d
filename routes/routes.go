package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/stores"
)

// Stores bundles the per-client item stores handed to the route groups.
type Stores struct {
	Cart     *stores.Cart
	Wishlist *stores.Wishlist
	Compare  *stores.Compare
	Recent   *stores.Recent
	Flags    *stores.Flags
	Hub      *stores.Hub
}

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, cat *catalog.Catalog, s Stores) {
	// 1️⃣ Public catalog + auth routes (no middleware)
	SetupPublicRoutes(r, cat)

	// 2️⃣ User routes (JWT-protected store mutations)
	SetupUserRoutes(r, cat, s)

	// 3️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, cat)
}
