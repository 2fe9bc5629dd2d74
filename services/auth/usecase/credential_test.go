package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/jwt"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "auth-service",
		},
		SuperAdmin: models.SuperAdminConfig{
			Email:    "Owner@KiranaKart.com",
			Password: "S3cret!Pass",
		},
		OTP: models.OTPConfig{
			CooldownSeconds: 60,
			AdminMobile:     "9999999999",
		},
		Reset: models.ResetConfig{
			Mobile: "8888888888",
		},
	}
}

func TestCredentialGateway_SuperAdminBypass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no gateway expectations: the match never leaves the process
	gw := mocks.NewMockAuthGW(ctrl)
	creds := newCredentialGateway(testConfig(), gw)

	outcome, err := creds.Login(context.Background(), models.ActorAdmin, "OWNER@kiranakart.COM", "S3cret!Pass")

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAuthenticated, outcome.Status)
	assert.Equal(t, "owner@kiranakart.com", outcome.Identity.Email)
	assert.Equal(t, models.RoleSuperAdmin, outcome.Identity.Role)

	claims, err := jwt.ValidateToken(outcome.Identity.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleSuperAdmin), (*claims)["role"])
}

func TestCredentialGateway_SuperAdminPasswordIsExact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().
		AdminLogin(gomock.Any(), "owner@kiranakart.com", "s3cret!pass").
		Return(nil, apperrors.Authorization("Invalid email or password"))

	creds := newCredentialGateway(testConfig(), gw)

	// wrong-case password falls through to the authority
	outcome, err := creds.Login(context.Background(), models.ActorAdmin, "owner@kiranakart.com", "s3cret!pass")

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRejected, outcome.Status)
	assert.Equal(t, "Invalid email or password", outcome.Reason)
}

func TestCredentialGateway_SuperAdminIgnoredForCustomerClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().
		CustomerLogin(gomock.Any(), "owner@kiranakart.com", "S3cret!Pass").
		Return(nil, apperrors.Authorization("Invalid credentials"))

	creds := newCredentialGateway(testConfig(), gw)

	outcome, err := creds.Login(context.Background(), models.ActorCustomer, "owner@kiranakart.com", "S3cret!Pass")

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRejected, outcome.Status)
}

func TestCredentialGateway_CustomerLoginAuthenticates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().
		CustomerLogin(gomock.Any(), "user@example.com", "password1").
		Return(&models.LoginResponse{Success: true, Token: "tok-1"}, nil)

	creds := newCredentialGateway(testConfig(), gw)

	outcome, err := creds.Login(context.Background(), models.ActorCustomer, " User@Example.com ", "password1")

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAuthenticated, outcome.Status)
	assert.Equal(t, models.RoleCustomer, outcome.Identity.Role)
	assert.Equal(t, "tok-1", outcome.Identity.Token)
}

func TestCredentialGateway_AdminLoginNeedsSecondFactor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().
		AdminLogin(gomock.Any(), "admin@example.com", "password1").
		Return(&models.AdminLoginResponse{Success: true}, nil)

	creds := newCredentialGateway(testConfig(), gw)

	outcome, err := creds.Login(context.Background(), models.ActorAdmin, "admin@example.com", "password1")

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNeedsSecondFactor, outcome.Status)
	assert.Equal(t, models.RoleSubAdmin, outcome.Identity.Role)
	assert.Empty(t, outcome.Identity.Token)
}

func TestCredentialGateway_ValidationBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	creds := newCredentialGateway(testConfig(), gw)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"malformed email", "not-an-email", "password1"},
		{"empty email", "", "password1"},
		{"empty password", "user@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := creds.Login(context.Background(), models.ActorCustomer, tt.email, tt.password)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}

func TestCredentialGateway_NetworkErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().
		CustomerLogin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Network(errors.New("dial tcp: timeout")))

	creds := newCredentialGateway(testConfig(), gw)

	outcome, err := creds.Login(context.Background(), models.ActorCustomer, "user@example.com", "password1")

	assert.Nil(t, outcome)
	assert.True(t, apperrors.IsNetwork(err))
}
