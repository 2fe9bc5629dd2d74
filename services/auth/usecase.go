package auth

import (
	"context"

	"github.com/kiranakart/auth-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kiranakart/auth-service/services/auth AuthUC

// AuthUC represents the identity orchestrator interface. It sequences
// credential validation, the OTP second factor and session persistence,
// and decides which view the actor sees next.
type AuthUC interface {
	// session lifecycle
	Bootstrap(ctx context.Context) (*models.Session, error)
	CurrentSession() *models.Session
	Logout(ctx context.Context) error
	Events() <-chan models.AuthEvent

	// credential submission
	Login(ctx context.Context, email, password string) (*models.Outcome, error)
	AdminLogin(ctx context.Context, email, password string) (*models.Outcome, error)
	RegisterCustomer(ctx context.Context, req *models.CustomerSignupRequest) (*models.Outcome, error)

	// second factor
	StartCustomerChallenge(ctx context.Context) (*models.OTPChallenge, error)
	VerifyOTP(ctx context.Context, code string) (*models.Session, error)
	ResendOTP(ctx context.Context) (*models.OTPChallenge, error)
	CancelOTP()
	ChallengeSnapshot() *models.OTPChallenge

	// sub-admin authorization registry
	ValidateSubAdminEmail(ctx context.Context, email string) error
	NoteSubAdminEmailEdit(email string)
	RegisterSubAdmin(ctx context.Context, req *models.SubAdminSignupRequest, confirmPassword string) error
	ListSubAdmins(ctx context.Context) ([]models.AuthorizationRecord, error)
	CreateSubAdmin(ctx context.Context, email string) (*models.AuthorizationRecord, error)
	RemoveSubAdmin(ctx context.Context, id string) error

	// password reset
	ResetSubmitEmail(ctx context.Context, email string) (*models.PasswordResetState, error)
	ResetSubmitOTP(ctx context.Context, code string) (*models.PasswordResetState, error)
	ResetSubmitPassword(ctx context.Context, newPassword, confirmPassword string) (*models.PasswordResetState, error)
	ResetResend(ctx context.Context) (*models.PasswordResetState, error)
	ResetBack() (*models.PasswordResetState, error)
	ResetState() *models.PasswordResetState
}
