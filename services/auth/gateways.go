package auth

import (
	"context"

	"github.com/kiranakart/auth-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kiranakart/auth-service/services/auth AuthGW

// AuthGW defines the auth gateway interface: every call against the
// remote authority plus the session event publications
type AuthGW interface {
	// credential endpoints
	CustomerLogin(ctx context.Context, email, password string) (*models.LoginResponse, error)
	AdminLogin(ctx context.Context, email, password string) (*models.AdminLoginResponse, error)
	RegisterCustomer(ctx context.Context, req *models.CustomerSignupRequest) (*models.SignupResponse, error)

	// OTP endpoints
	AdminSendOTP(ctx context.Context, email string) error
	AdminVerifyOTP(ctx context.Context, email, mobile, code string) (*models.OTPVerifyResult, error)
	CustomerSendOTP(ctx context.Context, mobile, userID string) error
	CustomerVerifyOTP(ctx context.Context, mobile, code, userID string) (*models.OTPVerifyResult, error)

	// sub-admin authorization registry
	ListSubAdmins(ctx context.Context) ([]models.AuthorizationRecord, error)
	CreateSubAdmin(ctx context.Context, email string) (*models.AuthorizationRecord, error)
	RemoveSubAdmin(ctx context.Context, id string) error
	RegisterSubAdmin(ctx context.Context, req *models.SubAdminSignupRequest) error

	// password reset
	ResetSendOTP(ctx context.Context, email, mobile string) error
	ResetVerifyOTP(ctx context.Context, email, mobile, code string) error
	ResetPassword(ctx context.Context, email, mobile, code, newPassword string) error

	// session events
	PublishSessionEstablished(ctx context.Context, session *models.Session) error
	PublishSessionCleared(ctx context.Context, email string) error
}
