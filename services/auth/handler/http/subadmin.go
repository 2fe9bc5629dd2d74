package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
)

// subAdminSignupRequest carries the registration form plus the local
// confirmation field that never leaves the process
type subAdminSignupRequest struct {
	models.SubAdminSignupRequest
	ConfirmPassword string `json:"confirmPassword"`
}

// ValidateSubAdminEmail checks an email against the allow list. The
// "edit" trigger only schedules a debounced check and answers
// immediately; the verdict arrives with the next immediate validation.
func (h *AuthHandler) ValidateSubAdminEmail(c echo.Context) error {
	var req models.ValidateEmailRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if req.Trigger == "edit" {
		h.authUC.NoteSubAdminEmailEdit(req.Email)
		return utils.SuccessResponse(c, http.StatusAccepted, "Validation scheduled", nil)
	}

	if err := h.authUC.ValidateSubAdminEmail(c.Request().Context(), req.Email); err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email is authorized", nil)
}

// RegisterSubAdmin handles a pre-authorized sub-admin registration
func (h *AuthHandler) RegisterSubAdmin(c echo.Context) error {
	var req subAdminSignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if err := h.authUC.RegisterSubAdmin(c.Request().Context(), &req.SubAdminSignupRequest, req.ConfirmPassword); err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Sub-admin registered", nil)
}

// ListSubAdmins returns the allow list
func (h *AuthHandler) ListSubAdmins(c echo.Context) error {
	records, err := h.authUC.ListSubAdmins(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", records)
}

// CreateSubAdmin adds an email to the allow list
func (h *AuthHandler) CreateSubAdmin(c echo.Context) error {
	var req models.CreateSubAdminRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	record, err := h.authUC.CreateSubAdmin(c.Request().Context(), req.Email)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Sub-admin authorized", record)
}

// RemoveSubAdmin deletes an allow-list entry
func (h *AuthHandler) RemoveSubAdmin(c echo.Context) error {
	if err := h.authUC.RemoveSubAdmin(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sub-admin removed", nil)
}
