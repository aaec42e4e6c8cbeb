package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mega-automotives/mega_backend/models"
)

// errorJSON renders a taxonomy error with its kind's status code. Failures are
// surfaced unchanged to the caller; nothing is retried or downgraded here.
func errorJSON(c echo.Context, err error) error {
	return c.JSON(models.ErrorStatusCode(err), models.Response{
		Status:  models.ErrorStatusCode(err),
		Message: err.Error(),
	})
}

// pagination reads the page/limit query parameters with the defaults the
// listing endpoints share.
func pagination(c echo.Context) (skip int64, limit int64) {
	page := int64(1)
	if p, err := strconv.ParseInt(c.QueryParam("page"), 10, 64); err == nil && p > 0 {
		page = p
	}

	limit = 10
	if l, err := strconv.ParseInt(c.QueryParam("limit"), 10, 64); err == nil && l > 0 {
		limit = l
	}

	return (page - 1) * limit, limit
}
