package middleware

import "github.com/gin-gonic/gin"

// NoCache keeps authenticated pages out of browser and proxy caches so a
// logged-out user cannot navigate back into stale content.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, post-check=0, pre-check=0, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
