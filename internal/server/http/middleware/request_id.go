package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/polkiloo/outsourcing/internal/logger"
)

const (
	// RequestIDHeader carries the request identifier in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is a gin context key for the request identifier.
	RequestIDContextKey = "requestID"
)

// RequestID reuses an incoming request id or generates one, echoes it back,
// and stores a logger tagged with it in the request context.
func RequestID(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		scoped := base.With(zap.String("request_id", id))
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), scoped))
		c.Next()
	}
}
