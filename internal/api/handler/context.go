package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/multixy/storefront/internal/api/middleware"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware
// and performs a fast-fail check before any service call: a non-empty user id
// proves the gate ran.
func ctxIdentity(c echo.Context) (userID, email, role string, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusForbidden, "missing authentication claims")
	}
	email, _ = c.Get(middleware.ContextEmail).(string)
	role, _ = c.Get(middleware.ContextRole).(string)
	return userID, email, role, nil
}
