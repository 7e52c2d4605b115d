package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/catalog"
	contentControllers "github.com/junaidrashid-git/storefront-api/controllers/content"
	productControllers "github.com/junaidrashid-git/storefront-api/controllers/product"
)

// SetupPublicRoutes registers the read-only catalog surface and the mocked
// auth endpoint. No middleware.
func SetupPublicRoutes(r *gin.Engine, cat *catalog.Catalog) {
	r.POST("/auth/login", auth.Login())

	// ──────────────── Browse Products ────────────────
	r.GET("/products", productControllers.GetProducts(cat))                      // GET /products
	r.GET("/products/suggest", productControllers.GetSuggestions(cat))           // GET /products/suggest?q=
	r.GET("/products/:slug", productControllers.GetProductBySlug(cat))           // GET /products/:slug
	r.GET("/products/:slug/related", productControllers.GetRelatedProducts(cat)) // GET /products/:slug/related

	// ──────────────── Storefront Content ────────────────
	r.GET("/categories", contentControllers.GetCategories(cat))     // GET /categories
	r.GET("/banners", contentControllers.GetBanners(cat))           // GET /banners
	r.GET("/testimonials", contentControllers.GetTestimonials(cat)) // GET /testimonials
}
