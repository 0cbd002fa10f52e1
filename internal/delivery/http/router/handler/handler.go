// Package handler contains the echo handlers for the repair booking API.
package handler

import (
	"net/http"

	"repairdesk/internal/delivery/http/response"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// getViewer builds the scope viewer from the auth middleware's context values.
func getViewer(c echo.Context) (usecase.Viewer, error) {
	userID, err := getUserID(c)
	if err != nil {
		return usecase.Viewer{}, err
	}

	roleVal := c.Get("role")
	role, ok := roleVal.(entity.Role)
	if !ok {
		return usecase.Viewer{}, response.Forbidden(c, "FORBIDDEN", "Role information missing")
	}

	return usecase.Viewer{UserID: userID, Role: role}, nil
}
