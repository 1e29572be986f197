package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumatch-utils/pkg/models"
	"resumatch-utils/pkg/utils"
)

// maxRequestBody caps POST payload size. Resume and job texts are plain
// text; anything beyond this is not a legitimate request.
const maxRequestBody = 1024 * 1024

// RequestValidation middleware validates incoming requests
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				if c.Request().ContentLength > maxRequestBody {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
