package usecase

import (
	"context"

	"github.com/kiranakart/auth-service/internal/pkg/models"
)

// ResetSubmitEmail starts the password reset flow
func (uc *AuthUC) ResetSubmitEmail(ctx context.Context, email string) (*models.PasswordResetState, error) {
	return uc.reset.SubmitEmail(ctx, email)
}

// ResetSubmitOTP verifies the reset code
func (uc *AuthUC) ResetSubmitOTP(ctx context.Context, code string) (*models.PasswordResetState, error) {
	return uc.reset.SubmitOTP(ctx, code)
}

// ResetSubmitPassword finishes the reset flow
func (uc *AuthUC) ResetSubmitPassword(ctx context.Context, newPassword, confirmPassword string) (*models.PasswordResetState, error) {
	return uc.reset.SubmitPassword(ctx, newPassword, confirmPassword)
}

// ResetResend re-requests the reset code
func (uc *AuthUC) ResetResend(ctx context.Context) (*models.PasswordResetState, error) {
	return uc.reset.Resend(ctx)
}

// ResetBack steps the reset flow one stage back
func (uc *AuthUC) ResetBack() (*models.PasswordResetState, error) {
	return uc.reset.Back()
}

// ResetState returns the reset flow snapshot
func (uc *AuthUC) ResetState() *models.PasswordResetState {
	return uc.reset.State()
}
