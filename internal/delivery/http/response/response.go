package response

import (
	"github.com/gin-gonic/gin"
)

// Status values carried by every response body.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response standardizes the API JSON response. The shape is part of the
// public contract with the website forms: exactly {status, message}.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Status:  StatusSuccess,
		Message: message,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Status:  StatusError,
		Message: message,
	})
}
