package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/models"
)

func validSignup() *models.SubAdminSignupRequest {
	return &models.SubAdminSignupRequest{
		Email:     "new@example.com",
		Password:  "password1",
		FirstName: "Asha",
		LastName:  "Rao",
		Mobile:    "7777777777",
	}
}

func TestRegisterSubAdmin_Success(t *testing.T) {
	uc, gw, _ := newTestUC(t)

	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("new@example.com"), nil)
	gw.EXPECT().
		RegisterSubAdmin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.SubAdminSignupRequest) error {
			assert.Equal(t, "new@example.com", req.Email)
			assert.Equal(t, string(models.RoleSubAdmin), req.Role)
			return nil
		})

	err := uc.RegisterSubAdmin(context.Background(), validSignup(), "password1")

	assert.NoError(t, err)
}

func TestRegisterSubAdmin_NotOnAllowList(t *testing.T) {
	uc, gw, _ := newTestUC(t)

	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("other@example.com"), nil)

	// no RegisterSubAdmin expectation: the submission never happens
	err := uc.RegisterSubAdmin(context.Background(), validSignup(), "password1")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestRegisterSubAdmin_LocalValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.SubAdminSignupRequest)
		confirm string
	}{
		{"missing first name", func(r *models.SubAdminSignupRequest) { r.FirstName = "" }, "password1"},
		{"missing last name", func(r *models.SubAdminSignupRequest) { r.LastName = "" }, "password1"},
		{"short password", func(r *models.SubAdminSignupRequest) { r.Password = "abc" }, "abc"},
		{"password mismatch", func(r *models.SubAdminSignupRequest) {}, "different"},
		{"non-numeric mobile", func(r *models.SubAdminSignupRequest) { r.Mobile = "not-a-number" }, "password1"},
		{"missing mobile", func(r *models.SubAdminSignupRequest) { r.Mobile = "" }, "password1"},
		{"short mobile", func(r *models.SubAdminSignupRequest) { r.Mobile = "123456789" }, "password1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUC(t)

			req := validSignup()
			tt.mutate(req)

			err := uc.RegisterSubAdmin(context.Background(), req, tt.confirm)

			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}

func TestValidateSubAdminEmail_Delegates(t *testing.T) {
	uc, gw, _ := newTestUC(t)

	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("allowed@example.com"), nil)

	assert.NoError(t, uc.ValidateSubAdminEmail(context.Background(), "Allowed@Example.com"))
}

func TestRemoveSubAdmin_RequiresID(t *testing.T) {
	uc, _, _ := newTestUC(t)

	err := uc.RemoveSubAdmin(context.Background(), "")

	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
