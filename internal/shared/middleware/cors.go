package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS cho phép public site (Next.js) gọi API từ browser.
// Admin secret header phải nằm trong Allow-Headers, nếu không preflight sẽ chặn.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+AdminSecretHeader+", "+RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
