package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminSecretHeader carries the shared secret presented by admin callers.
const AdminSecretHeader = "X-Admin-Password"

// AdminAuth gates write endpoints behind the single shared admin secret.
// The secret is injected at construction time, not read from globals.
//
// Missing header và wrong header đều trả về cùng một 401 - không phân biệt.
// ConstantTimeCompare để tránh timing side channel trên secret.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checkSecret(c, secret) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Unauthorized",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsAuthorized reports whether the request carries the correct shared secret.
// Read paths use this for the draft-visibility decision without aborting:
// an anonymous caller simply sees the published-only view.
func IsAuthorized(c *gin.Context, secret string) bool {
	return checkSecret(c, secret)
}

func checkSecret(c *gin.Context, secret string) bool {
	// Empty configured secret means admin access is disabled entirely.
	if secret == "" {
		return false
	}

	provided := c.GetHeader(AdminSecretHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) == 1
}
