// Package handler implements the HTTP endpoints of the storefront API.
package handler

import (
	"strconv"

	"storefront/internal/delivery/api/middleware"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// callerID returns the authenticated user of the request.
func callerID(c echo.Context) (int64, error) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// pathID parses the :id route parameter. Ids that cannot exist report notFound.
func pathID(c echo.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, notFound
	}

	return id, nil
}

// bind decodes the request into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
