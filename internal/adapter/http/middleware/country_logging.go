package middleware

import (
	"strings"

	"payment_service/internal/infrastructure/geo"

	"github.com/gin-gonic/gin"
)

// CountryLogging fires an asynchronous country lookup for the client IP of
// every request. The lookup never blocks or fails the request.
func CountryLogging(resolver *geo.CountryResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		go resolver.ResolveAndLog(clientIP(c))
		c.Next()
	}
}

// clientIP prefers the first X-Forwarded-For entry, matching how the service
// is deployed behind a proxy.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return c.ClientIP()
}
