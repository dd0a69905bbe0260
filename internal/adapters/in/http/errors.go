package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"veggo/internal/pkg/errs"
)

// Coordinates arrive as a lat/lng pair; a lone half is a client mistake.
var errInvalidCoordinatePair = errs.NewValueIsInvalidError("lat and lng must be supplied together")

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP statuses. Anything unrecognized
// becomes a 500 with a generic message; the cause is logged, not leaked.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrUnauthorized):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, errs.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrProductUnavailable),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInvalidUnit),
		errors.Is(err, errs.ErrUnitNotSupported):
		status, message = http.StatusBadRequest, err.Error()
	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	}

	return ctx.JSON(status, errorBody{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
