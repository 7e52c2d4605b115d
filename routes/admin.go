package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	productControllers "github.com/junaidrashid-git/storefront-api/controllers/product"
	"github.com/junaidrashid-git/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key
// middleware.
func SetupAdminRoutes(r *gin.Engine, cat *catalog.Catalog) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(cat)) // GET /admin/products/export
	}
}
