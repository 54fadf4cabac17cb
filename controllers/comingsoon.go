package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ComingSoon answers for dashboard modules that are not built yet. The
// frontend renders these as placeholder pages.
func ComingSoon(module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"module":  module,
			"status":  "coming_soon",
			"message": "This feature is currently under development.",
		})
	}
}
