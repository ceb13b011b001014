package middleware

import (
	"errors"
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		switch {
		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"method", c.Request.Method,
					"path", c.FullPath(),
					"request_id", c.GetString(string(domain.KeyRequestID)),
					"error", err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Not found")
		default:
			// Internal details stay in the log
			logger.Log.Error("internal server error",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"error", err,
			)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
	}
}
