package api

import (
	"github.com/gin-gonic/gin"
)

// respondError writes the uniform failure envelope. Messages stay generic so
// internal details never leak to clients.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
