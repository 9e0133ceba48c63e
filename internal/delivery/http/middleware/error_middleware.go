package middleware

import (
	"errors"
	"go-caduae-backend/internal/delivery/http/response"
	"go-caduae-backend/internal/domain"
	"go-caduae-backend/pkg/apperror"
	"go-caduae-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler drains errors attached to the context and renders them as the
// {status, message} envelope, so no exit path can produce a bodiless error
// response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message)
				return
			}
			// Errors without a status attached must not reach clients
			// verbatim. Log server-side, answer generically.
			requestID := c.GetString(string(domain.KeyRequestID))
			logger.Log.Error("unhandled request error", "error", err, "request_id", requestID)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
		}
	}
}
