package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Security returns middleware applying CORS and basic security headers.
// allowedOrigins is a comma-separated allow-list; "*" permits any origin.
func Security(allowedOrigins string) gin.HandlerFunc {
	allowAny := allowedOrigins == "*"
	allowed := make(map[string]bool)
	for _, origin := range strings.Split(allowedOrigins, ",") {
		normalized := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
		if normalized != "" {
			allowed[normalized] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if allowAny {
				c.Header("Access-Control-Allow-Origin", "*")
			} else if allowed[strings.TrimSuffix(strings.ToLower(origin), "/")] {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type,Authorization")
		}

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
