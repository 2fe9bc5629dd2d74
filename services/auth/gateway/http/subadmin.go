package gateway_http

import (
	"context"
	"encoding/json"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/models"
)

// subAdminListEnvelope tolerates the three shapes the authority has
// shipped for the allow list: a bare array, {"subAdmins": [...]}, and
// {"data": [...]}.
type subAdminListEnvelope struct {
	SubAdmins []models.AuthorizationRecord `json:"subAdmins"`
	Data      []models.AuthorizationRecord `json:"data"`
}

// ListSubAdmins fetches the sub-admin allow list
func (g *AuthorityGateway) ListSubAdmins(ctx context.Context) ([]models.AuthorizationRecord, error) {
	var raw json.RawMessage
	if err := g.client.GetJSON(ctx, pathSubAdmins, &raw); err != nil {
		return nil, classifyStatus(err, "Failed to fetch sub-admins")
	}

	var records []models.AuthorizationRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var envelope subAdminListEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, "failed to decode sub-admin list", err)
	}
	if envelope.SubAdmins != nil {
		return envelope.SubAdmins, nil
	}
	return envelope.Data, nil
}

// CreateSubAdmin adds an email to the allow list
func (g *AuthorityGateway) CreateSubAdmin(ctx context.Context, email string) (*models.AuthorizationRecord, error) {
	var raw json.RawMessage
	err := g.client.PostJSON(ctx, pathSubAdmins, models.CreateSubAdminRequest{Email: email}, &raw)
	if err != nil {
		return nil, classifyStatus(err, "Failed to add sub-admin")
	}

	var record models.AuthorizationRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, "failed to decode sub-admin record", err)
	}

	return &record, nil
}

// RemoveSubAdmin deletes an allow-list entry by id
func (g *AuthorityGateway) RemoveSubAdmin(ctx context.Context, id string) error {
	if err := g.client.Delete(ctx, pathSubAdmins+"/"+id); err != nil {
		return classifyStatus(err, "Failed to remove sub-admin")
	}
	return nil
}

// RegisterSubAdmin submits a pre-authorized sub-admin registration
func (g *AuthorityGateway) RegisterSubAdmin(ctx context.Context, req *models.SubAdminSignupRequest) error {
	var raw json.RawMessage
	if err := g.client.PostJSON(ctx, pathAdminSignup, req, &raw); err != nil {
		return classifyStatus(err, "Registration failed")
	}
	return nil
}
