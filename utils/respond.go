package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError writes a terse JSON error body. Diagnostic detail belongs
// in the server log, never in the response.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
