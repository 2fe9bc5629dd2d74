package gateway_http

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
)

// AdminSendOTP asks the authority to issue a code for an admin login.
// The email is normalized before it leaves the process so the later
// verification references the identical target string.
func (g *AuthorityGateway) AdminSendOTP(ctx context.Context, email string) error {
	query := url.Values{}
	query.Set("email", utils.NormalizeEmail(email))

	if err := g.client.PostQuery(ctx, pathAdminSendOTP, query, nil); err != nil {
		return classifyStatus(err, "Failed to send OTP")
	}
	return nil
}

// AdminVerifyOTP submits an admin's code for verification
func (g *AuthorityGateway) AdminVerifyOTP(ctx context.Context, email, mobile, code string) (*models.OTPVerifyResult, error) {
	query := url.Values{}
	query.Set("email", utils.NormalizeEmail(email))
	query.Set("mobileNumber", mobile)
	query.Set("otp", code)

	var raw json.RawMessage
	if err := g.client.PostQuery(ctx, pathAdminVerifyOTP, query, &raw); err != nil {
		return nil, classifyStatus(err, "Invalid OTP")
	}

	var result models.OTPVerifyResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, "failed to decode verify response", err)
	}
	result.Raw = raw

	return &result, nil
}

// CustomerSendOTP asks the authority to issue a registration code
func (g *AuthorityGateway) CustomerSendOTP(ctx context.Context, mobile, userID string) error {
	query := url.Values{}
	query.Set("mobileNumber", mobile)
	if userID != "" {
		query.Set("userId", userID)
	}

	if err := g.client.PostQuery(ctx, pathSendOTP, query, nil); err != nil {
		return classifyStatus(err, "Failed to send OTP")
	}
	return nil
}

// CustomerVerifyOTP submits a customer's registration code
func (g *AuthorityGateway) CustomerVerifyOTP(ctx context.Context, mobile, code, userID string) (*models.OTPVerifyResult, error) {
	query := url.Values{}
	query.Set("mobileNumber", mobile)
	query.Set("otp", code)
	if userID != "" {
		query.Set("userId", userID)
	}

	var raw json.RawMessage
	if err := g.client.PostQuery(ctx, pathVerifyOTP, query, &raw); err != nil {
		return nil, classifyStatus(err, "Invalid OTP")
	}

	var result models.OTPVerifyResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, "failed to decode verify response", err)
	}
	result.Raw = raw

	return &result, nil
}
