package middleware

import (
	"context"
	"go-caduae-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an ID for log correlation. An inbound
// X-Request-ID is kept; otherwise a fresh UUID is assigned. The ID goes back
// in the response header and rides the request context into the usecases.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyRequestID, id))
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
