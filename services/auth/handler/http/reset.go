package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
)

// ResetSubmitEmail starts the password reset flow
func (h *AuthHandler) ResetSubmitEmail(c echo.Context) error {
	var req models.ResetEmailRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	state, err := h.authUC.ResetSubmitEmail(c.Request().Context(), req.Email)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", state)
}

// ResetSubmitOTP verifies the reset code
func (h *AuthHandler) ResetSubmitOTP(c echo.Context) error {
	var req models.ResetOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	state, err := h.authUC.ResetSubmitOTP(c.Request().Context(), req.Code)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified", state)
}

// ResetSubmitPassword finishes the reset flow
func (h *AuthHandler) ResetSubmitPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	state, err := h.authUC.ResetSubmitPassword(c.Request().Context(), req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successful", state)
}

// ResetResend re-requests the reset code
func (h *AuthHandler) ResetResend(c echo.Context) error {
	state, err := h.authUC.ResetResend(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP resent", state)
}

// ResetBack steps the reset flow one stage back
func (h *AuthHandler) ResetBack(c echo.Context) error {
	state, err := h.authUC.ResetBack()
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", state)
}

// ResetState returns the reset flow snapshot
func (h *AuthHandler) ResetState(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.authUC.ResetState())
}
