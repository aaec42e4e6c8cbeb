// middleware/error_handler.go
package middleware

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/mega-automotives/mega_backend/models"
)

// HTTPErrorHandler renders every error escaping a handler as a Response
// envelope. Taxonomy errors keep their kind's status code and message;
// anything else is an internal server error whose detail is exposed only in
// development mode.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := models.ErrorStatusCode(err)
	message := err.Error()

	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if status == http.StatusInternalServerError && os.Getenv("ENV") != "development" {
		message = "Internal Server Error"
	}

	if err := c.JSON(status, models.Response{
		Status:  status,
		Message: message,
	}); err != nil {
		c.Logger().Error(err)
	}
}
