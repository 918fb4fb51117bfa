package envelope

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/clinic/internal/platform/apperr"
)

// FromError maps a domain error to the HTTP error the ErrorHandler renders:
// validation problems are client errors, everything else is a server error
// whose cause is kept in the message for operators.
func FromError(err error) error {
	if err == nil {
		return nil
	}
	if apperr.IsValidation(err) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("details %v", err))
}
