// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	httpmiddleware "coderr/internal/delivery/http/middleware"
	"coderr/internal/delivery/http/response"
	domainerrors "coderr/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorID extracts the authenticated user ID placed on the context by the
// auth middleware.
func actorID(c echo.Context) (uuid.UUID, error) {
	val := c.Get(httpmiddleware.ContextKeyUserID)
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	return id, nil
}

// pathUUID parses the named path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " in path")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
