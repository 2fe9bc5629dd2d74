package gateway_http

import (
	"context"
	"net/url"

	"github.com/kiranakart/auth-service/internal/utils"
)

// ResetSendOTP asks the authority to issue a password-reset code. The
// mobile target is fixed by configuration, not chosen by the caller.
func (g *AuthorityGateway) ResetSendOTP(ctx context.Context, email, mobile string) error {
	query := url.Values{}
	query.Set("email", utils.NormalizeEmail(email))
	query.Set("mobileNumber", mobile)

	if err := g.client.PostQuery(ctx, pathResetSendOTP, query, nil); err != nil {
		return classifyStatus(err, "Failed to send OTP")
	}
	return nil
}

// ResetVerifyOTP submits a password-reset code for verification
func (g *AuthorityGateway) ResetVerifyOTP(ctx context.Context, email, mobile, code string) error {
	query := url.Values{}
	query.Set("email", utils.NormalizeEmail(email))
	query.Set("mobileNumber", mobile)
	query.Set("otp", code)

	if err := g.client.PostQuery(ctx, pathResetVerifyOTP, query, nil); err != nil {
		return classifyStatus(err, "Invalid OTP")
	}
	return nil
}

// resetPasswordRequest carries the final reset submission. The code
// rides along so the authority can bind the new password to the
// verified challenge.
type resetPasswordRequest struct {
	Email       string `json:"email"`
	Mobile      string `json:"mobileNumber"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword submits the new password with the verified code
func (g *AuthorityGateway) ResetPassword(ctx context.Context, email, mobile, code, newPassword string) error {
	req := resetPasswordRequest{
		Email:       utils.NormalizeEmail(email),
		Mobile:      mobile,
		OTP:         code,
		NewPassword: newPassword,
	}

	if err := g.client.PostJSON(ctx, pathResetPassword, req, nil); err != nil {
		return classifyStatus(err, "Failed to reset password")
	}
	return nil
}
