package middleware

import (
	"log/slog"
	"net/http"

	"petfeeder/internal/delivery/api/response"
	deliverycontext "petfeeder/internal/delivery/context"
	domainerrors "petfeeder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the api's echo.HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders domain errors with their own status, echo errors
// (unknown route, body too large) as HTTP_ERROR and everything else as an
// opaque 500. The route template is logged rather than the path, which may
// hold a device secret.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
	)

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		}
		_ = response.AppError(c, appErr)
	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	default:
		logger.ErrorContext(ctx, "unhandled error", slog.Any("error", err))
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}
