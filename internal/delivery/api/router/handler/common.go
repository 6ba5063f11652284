package handler

import (
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requireUser returns the authenticated user id, writing a 401 when absent.
func requireUser(c echo.Context) (uuid.UUID, bool, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}

// pathUUID parses a uuid path parameter, writing a 400 when malformed.
func pathUUID(c echo.Context, name, label string) (uuid.UUID, bool, error) {
	return parseUUIDField(c, c.Param(name), label)
}

// bindAndValidate decodes the request body into req and validates it.
func bindAndValidate(c echo.Context, req any, what string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Invalid "+what+" input")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationFailed(c, validator.Describe(err))
	}

	return true, nil
}

// parseUUIDField parses a uuid carried in a request body.
func parseUUIDField(c echo.Context, raw, label string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+label+" ID")
	}

	return id, true, nil
}
