package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the mutating job endpoints with a shared token. An
// empty token disables the check entirely, matching the original
// deployment which had no server-side auth.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-Admin-Token") != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// MethodFallback answers unmatched methods: OPTIONS gets an empty 200
// everywhere (preflights without an Origin header land here), anything
// else a 405.
func MethodFallback(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
