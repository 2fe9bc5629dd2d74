package usecase

import (
	"context"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/logger"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
)

// ValidateSubAdminEmail checks an email against the allow list without
// submitting anything. It is the leave-the-field trigger: any check a
// pending edit scheduled is cancelled and the lookup runs now.
func (uc *AuthUC) ValidateSubAdminEmail(ctx context.Context, email string) error {
	return uc.validator.OnBlur(ctx, email)
}

// NoteSubAdminEmailEdit registers activity on the signup email field.
// The allow-list check runs once the edits pause, pre-warming the
// validation memo for the blur that follows.
func (uc *AuthUC) NoteSubAdminEmailEdit(email string) {
	uc.validator.OnEdit(email, func(err error) {
		if err != nil {
			logger.Debug("Sub-admin email pre-check failed",
				logger.String("email", utils.NormalizeEmail(email)),
				logger.ErrorField(err))
		}
	})
}

// RegisterSubAdmin submits a sub-admin registration. The email must be
// on the allow list; the check runs again at submission time since the
// super-admin may have revoked it after the field was validated.
func (uc *AuthUC) RegisterSubAdmin(ctx context.Context, req *models.SubAdminSignupRequest, confirmPassword string) error {
	req.Email = utils.NormalizeEmail(req.Email)

	if req.FirstName == "" || req.LastName == "" {
		return apperrors.Validation("First and last name are required")
	}
	if len(req.Password) < 6 {
		return apperrors.Validation("Password must be at least 6 characters")
	}
	if req.Password != confirmPassword {
		return apperrors.Validation("Passwords do not match")
	}
	if len(req.Mobile) < 10 || !utils.IsDigits(req.Mobile) {
		return apperrors.Validation("Please enter a valid mobile number")
	}

	if err := uc.registry.ValidateEmail(ctx, req.Email); err != nil {
		return err
	}

	req.Role = string(models.RoleSubAdmin)
	if err := uc.gw.RegisterSubAdmin(ctx, req); err != nil {
		return err
	}

	logger.Info("Sub-admin registered",
		logger.String("email", req.Email))

	return nil
}

// ListSubAdmins returns the allow list
func (uc *AuthUC) ListSubAdmins(ctx context.Context) ([]models.AuthorizationRecord, error) {
	return uc.registry.List(ctx)
}

// CreateSubAdmin adds an email to the allow list
func (uc *AuthUC) CreateSubAdmin(ctx context.Context, email string) (*models.AuthorizationRecord, error) {
	return uc.registry.Create(ctx, email)
}

// RemoveSubAdmin deletes an allow-list entry
func (uc *AuthUC) RemoveSubAdmin(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("Sub-admin id is required")
	}
	return uc.registry.Remove(ctx, id)
}
