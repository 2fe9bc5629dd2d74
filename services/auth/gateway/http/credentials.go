package gateway_http

import (
	"context"
	"encoding/json"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/models"
)

// CustomerLogin validates customer credentials against the authority
func (g *AuthorityGateway) CustomerLogin(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var raw json.RawMessage
	err := g.client.PostJSON(ctx, pathLogin, models.LoginRequest{Email: email, Password: password}, &raw)
	if err != nil {
		return nil, classifyStatus(err, "Login failed")
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, "failed to decode login response", err)
	}
	resp.Raw = raw

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Login failed"
		}
		return nil, apperrors.Authorization(msg)
	}

	return &resp, nil
}

// AdminLogin validates admin credentials against the authority. The
// endpoint is selected by the caller's declared actor class, not by
// response content.
func (g *AuthorityGateway) AdminLogin(ctx context.Context, email, password string) (*models.AdminLoginResponse, error) {
	var raw json.RawMessage
	err := g.client.PostJSON(ctx, pathAdminLogin, models.LoginRequest{Email: email, Password: password}, &raw)
	if err != nil {
		return nil, classifyStatus(err, "Invalid email or password")
	}

	var resp models.AdminLoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, "failed to decode admin login response", err)
	}
	resp.Raw = raw

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Invalid email or password"
		}
		return nil, apperrors.Authorization(msg)
	}

	return &resp, nil
}

// RegisterCustomer submits a customer registration
func (g *AuthorityGateway) RegisterCustomer(ctx context.Context, req *models.CustomerSignupRequest) (*models.SignupResponse, error) {
	var raw json.RawMessage
	err := g.client.PostJSON(ctx, pathSignup, req, &raw)
	if err != nil {
		return nil, classifyStatus(err, "Registration failed")
	}

	var resp models.SignupResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, "failed to decode signup response", err)
	}
	resp.Raw = raw

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Registration failed"
		}
		return nil, apperrors.Authorization(msg)
	}

	return &resp, nil
}
