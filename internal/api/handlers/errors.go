package handlers

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"resumatch-utils/pkg/models"
	"resumatch-utils/pkg/utils"
)

// writeError maps an error onto the JSON error envelope. Known
// *utils.CustomError values carry their own status code and type slug;
// anything else is reported as an opaque internal error.
func writeError(c echo.Context, requestID string, err error) error {
	var custom *utils.CustomError
	if !errors.As(err, &custom) {
		custom = utils.NewInternalServerError("Internal server error")
	}
	return c.JSON(custom.Code, models.ErrorResponse{
		Error:     custom.Type,
		Message:   custom.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
