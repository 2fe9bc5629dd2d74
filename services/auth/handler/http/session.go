package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiranakart/auth-service/internal/utils"
)

// GetSession returns the active session, or 404 when unauthenticated
func (h *AuthHandler) GetSession(c echo.Context) error {
	session := h.authUC.CurrentSession()
	if session == nil {
		return utils.NotFoundResponse(c, "No active session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", session)
}

// Logout destroys the active session
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
