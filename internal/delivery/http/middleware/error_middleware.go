package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/FarazAhsan11/candidate-management/internal/delivery/http/response"
	"github.com/FarazAhsan11/candidate-management/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the gin context into the wire
// shapes: validation failures carry per-field issues, 500s carry the error
// string, everything else is a bare message. Nothing is swallowed silently.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			fmt.Printf("[ERROR] Internal Server Error: %v\n", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", "")
			return
		}

		if len(appErr.Fields) > 0 {
			response.ValidationError(c, appErr.Message, appErr.Fields)
			return
		}
		if appErr.Err != nil {
			fmt.Printf("[ERROR] %s: %v\n", appErr.Message, appErr.Err)
		}
		response.Error(c, appErr.Code, appErr.Message, appErr.Detail)
	}
}
