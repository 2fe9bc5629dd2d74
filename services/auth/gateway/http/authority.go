// Package gateway_http implements the HTTP client operations against
// the remote authority that owns credential and OTP truth.
package gateway_http

import (
	"time"

	httpclient "github.com/kiranakart/auth-service/internal/pkg/http"
	"github.com/kiranakart/auth-service/internal/pkg/models"
)

// Authority endpoint paths
const (
	pathLogin          = "/api/login"
	pathSignup         = "/api/signup"
	pathAdminLogin     = "/api/admin/login"
	pathAdminSendOTP   = "/api/admin/send-otp"
	pathAdminVerifyOTP = "/api/admin/verify-otp"
	pathSendOTP        = "/api/send-otp"
	pathVerifyOTP      = "/api/verify-otp"
	pathSubAdmins      = "/api/sub-admins"
	pathAdminSignup    = "/api/admin/signup"
	pathResetSendOTP   = "/api/send-otp-forgot-password"
	pathResetVerifyOTP = "/api/verify-otp-forgot-password"
	pathResetPassword  = "/api/reset-password-with-otp"
)

// AuthorityGateway is the HTTP client for the authority
type AuthorityGateway struct {
	client *httpclient.Client
}

// NewAuthorityGateway creates a new authority HTTP gateway
func NewAuthorityGateway(cfg models.AuthorityConfig) *AuthorityGateway {
	return &AuthorityGateway{
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second),
	}
}
