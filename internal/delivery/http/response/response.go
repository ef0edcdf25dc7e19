package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the standard error envelope. Details carries field-level
// validation errors; ProviderDetails carries the upstream email provider
// failure on dispatch errors.
type ErrorBody struct {
	Error           string      `json:"error"`
	Details         interface{} `json:"details,omitempty"`
	ProviderDetails interface{} `json:"providerDetails,omitempty"`
}

// Error sends an error response with optional field details
func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, ErrorBody{
		Error:   message,
		Details: details,
	})
}

// ProviderError sends a dispatch failure carrying the provider's error
func ProviderError(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, ErrorBody{
		Error:           message,
		ProviderDetails: details,
	})
}
