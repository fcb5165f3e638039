package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SharedSecretMiddleware rejects any request whose Authorization header is
// not exactly the shared secret. It runs before any handler logic.
func SharedSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != secret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
