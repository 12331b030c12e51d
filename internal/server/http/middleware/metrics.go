package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// Metrics reports every request to observer labelled by its route pattern.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observer.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
