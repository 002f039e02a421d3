package handler

import (
	"context"
	"net/http"

	"github.com/Astemirdum/bookstore-admin/admin/internal/command"
	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// toHTTPError maps workflow errors onto statuses. Record store failures
// surface as 502 whatever status the store answered with.
func toHTTPError(err error) *echo.HTTPError {
	var (
		ve  *errs.ValidationError
		hep *echo.HTTPError
	)
	switch {
	case errors.As(err, &hep):
		return hep
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Message())
	case errors.Is(err, command.ErrUnknownAction), errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrNoPendingDelete):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errs.IsNetwork(err), errs.IsHTTPStatus(err):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusGatewayTimeout, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
