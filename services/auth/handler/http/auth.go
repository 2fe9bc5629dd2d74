package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
)

// Login handles customer credential submission
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	outcome, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	if outcome.Status == models.OutcomeRejected {
		return utils.UnauthorizedResponse(c, outcome.Reason)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", outcome)
}

// AdminLogin handles admin credential submission. A non-super-admin
// success answers with the open OTP challenge, not a session.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	outcome, err := h.authUC.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	switch outcome.Status {
	case models.OutcomeRejected:
		return utils.UnauthorizedResponse(c, outcome.Reason)
	case models.OutcomeNeedsSecondFactor:
		return utils.SuccessResponse(c, http.StatusAccepted, "OTP verification required", outcome)
	default:
		return utils.SuccessResponse(c, http.StatusOK, "Login successful", outcome)
	}
}

// Register handles customer self-registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.CustomerSignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	outcome, err := h.authUC.RegisterCustomer(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}

	if outcome.Status == models.OutcomeRejected {
		return utils.ConflictResponse(c, outcome.Reason)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration submitted, OTP verification required", outcome)
}
