package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// GinRateLimitMiddleware applies a token-bucket limit to a route group.
// Spreadsheet uploads and model calls are expensive, so requests beyond
// the bucket are rejected with 429 rather than queued.
func GinRateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "Too many requests, please retry later",
			})
			return
		}

		c.Next()
	}
}
