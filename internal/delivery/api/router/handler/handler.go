// Package handler holds the echo handlers of the feeder API.
package handler

import (
	"net/http"

	"petfeeder/internal/delivery/api/middleware"
	domainerrors "petfeeder/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathID parses a UUID path parameter. Malformed ids are reported as
// notFound so callers cannot probe for valid identifiers.
func pathID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}
