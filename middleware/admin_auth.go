// middleware/admin_auth.go
package middleware

import (
    "crypto/hmac"
    "net/http"
    "os"

    "github.com/gin-gonic/gin"
)

// RequireAdminKey guards the admin config and analytics routes with a
// shared key supplied in X-Admin-Key. The comparison is constant time.
func RequireAdminKey() gin.HandlerFunc {
    return func(c *gin.Context) {
        expected := os.Getenv("ADMIN_API_KEY")
        if expected == "" {
            c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Admin API not configured"})
            return
        }

        provided := c.GetHeader("X-Admin-Key")
        if provided == "" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing admin key"})
            return
        }

        if !hmac.Equal([]byte(provided), []byte(expected)) {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
            return
        }

        c.Next()
    }
}
