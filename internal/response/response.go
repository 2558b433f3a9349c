// Package response provides the unified API response format: status (HTTP
// code), message, data.
package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the envelope for every gateway response.
type Body struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success sends a successful response with optional data.
func Success(c *gin.Context, statusCode int, message string, data any) {
	if message == "" {
		message = "success"
	}
	c.JSON(statusCode, Body{Status: statusCode, Message: message, Data: data})
}

// Error sends an error response; data is always nil.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Status: statusCode, Message: message, Data: nil})
}

// AbortWithError aborts the handler chain with the unified error envelope
// (for middleware).
func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Body{Status: statusCode, Message: message, Data: nil})
}
