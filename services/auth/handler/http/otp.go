package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
)

// SendOTP issues the registration code to the pending customer's mobile
func (h *AuthHandler) SendOTP(c echo.Context) error {
	challenge, err := h.authUC.StartCustomerChallenge(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", challenge)
}

// VerifyOTP submits the second-factor code for the pending identity
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	session, err := h.authUC.VerifyOTP(c.Request().Context(), req.Code)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification successful", session)
}

// ResendOTP re-issues the pending challenge's code
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	challenge, err := h.authUC.ResendOTP(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP resent", challenge)
}

// CancelOTP abandons the pending challenge
func (h *AuthHandler) CancelOTP(c echo.Context) error {
	h.authUC.CancelOTP()
	return utils.SuccessResponse(c, http.StatusOK, "Verification cancelled", nil)
}

// ChallengeState returns the current OTP challenge snapshot
func (h *AuthHandler) ChallengeState(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.authUC.ChallengeSnapshot())
}
