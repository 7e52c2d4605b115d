package flagControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/stores"
)

type DemoModeInput struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// GET /user/demo-mode
func GetDemoMode(flags *stores.Flags) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"enabled": flags.Enabled()})
	}
}

// PUT /user/demo-mode
func SetDemoMode(flags *stores.Flags) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DemoModeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		flags.SetEnabled(*input.Enabled)
		c.JSON(http.StatusOK, gin.H{"enabled": flags.Enabled()})
	}
}

// POST /user/demo-mode/toggle
func ToggleDemoMode(flags *stores.Flags) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"enabled": flags.Toggle()})
	}
}
