package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceMiddleware adds a trace ID to the request context.
// It reads X-Request-ID if the caller sent one, so webhook re-deliveries of
// the same notification correlate in the logs; otherwise it generates a UUID.
// The trace ID is stored in both gin.Context (key: "traceID") and the
// request's context.Context.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Request-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set("traceID", traceID)
		ctx := context.WithValue(c.Request.Context(), "traceID", traceID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
