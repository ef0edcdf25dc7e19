package middleware

import (
	"errors"
	"net/http"

	"go-consulting-backend/internal/delivery/http/response"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the context into the JSON
// error envelope. Handlers call c.Error(err) and return; this middleware
// owns the response shape.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients. Log the
			// actual error server-side and send a generic message.
			logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			return
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("request failed", "path", c.FullPath(), "error", appErr.Unwrap())
			// Server-side details on a 5xx come from the email provider
			// and are safe to surface; everything else stays generic
			if appErr.Details != nil {
				response.ProviderError(c, appErr.Code, appErr.Message, appErr.Details)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		response.Error(c, appErr.Code, appErr.Message, appErr.Details)
	}
}
