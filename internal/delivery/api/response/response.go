// Package response renders the JSON envelopes of the user facing API and the
// flat bodies feeders read.
package response

import (
	"net/http"

	"petfeeder/internal/delivery/api/validator"
	deliverycontext "petfeeder/internal/delivery/context"
	domainerrors "petfeeder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Device writes a bare body. Feeder firmware does not understand the envelope.
func Device(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Error writes the error envelope. Details are dropped for server errors and
// for auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	switch {
	case statusCode >= http.StatusInternalServerError,
		statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError answers a body or query that could not be decoded.
func BindingError(c echo.Context) error {
	return BadRequest(c, "INVALID_INPUT", "Malformed request body.")
}

// ValidationError lists the failing fields, e.g. {"ActivationCode":"required"}.
func ValidationError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed.", validator.Fields(err))
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors and passes anything else on to the
// echo error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := asAppError(err); ok {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}

func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

func asAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	ok := errors.As(err, &appErr)

	return appErr, ok
}
