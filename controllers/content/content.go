package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/models"
)

// GET /categories
func GetCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := cat.Categories()
		if categories == nil {
			categories = []models.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /banners
func GetBanners(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners := cat.Banners()
		if banners == nil {
			banners = []models.Banner{}
		}
		c.JSON(http.StatusOK, banners)
	}
}

// GET /testimonials
func GetTestimonials(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials := cat.Testimonials()
		if testimonials == nil {
			testimonials = []models.Testimonial{}
		}
		c.JSON(http.StatusOK, testimonials)
	}
}
