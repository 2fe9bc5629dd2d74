package gateway_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/models"
)

func newTestGateway(handler http.Handler) (*AuthorityGateway, *httptest.Server) {
	server := httptest.NewServer(handler)
	gw := NewAuthorityGateway(models.AuthorityConfig{BaseURL: server.URL, Timeout: 5})
	return gw, server
}

func TestCustomerLogin_Success(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"token":"tok-1","user":{"email":"user@example.com"}}`))
	}))
	defer server.Close()

	resp, err := gw.CustomerLogin(context.Background(), "user@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.NotEmpty(t, resp.Raw)
}

func TestCustomerLogin_RejectedWithMessage(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer server.Close()

	_, err := gw.CustomerLogin(context.Background(), "user@example.com", "wrong")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestCustomerLogin_SuccessFalseBody(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"Account locked"}`))
	}))
	defer server.Close()

	_, err := gw.CustomerLogin(context.Background(), "user@example.com", "secret")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	assert.Contains(t, err.Error(), "Account locked")
}

func TestCustomerLogin_NetworkFailure(t *testing.T) {
	gw, server := newTestGateway(http.NotFoundHandler())
	server.Close() // unreachable

	_, err := gw.CustomerLogin(context.Background(), "user@example.com", "secret")

	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
}

func TestAdminLogin_Success(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/login", r.URL.Path)
		w.Write([]byte(`{"success":true,"email":"admin@example.com","role":"sub-admin"}`))
	}))
	defer server.Close()

	resp, err := gw.AdminLogin(context.Background(), "admin@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "sub-admin", resp.Role)
}

func TestAdminSendOTP_NormalizesEmail(t *testing.T) {
	var gotEmail string
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/send-otp", r.URL.Path)
		gotEmail = r.URL.Query().Get("email")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := gw.AdminSendOTP(context.Background(), "  Admin@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", gotEmail)
}

func TestAdminVerifyOTP_Success(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/verify-otp", r.URL.Path)
		assert.Equal(t, "123456", r.URL.Query().Get("otp"))
		w.Write([]byte(`{"token":"tok-2","email":"admin@example.com","role":"sub-admin"}`))
	}))
	defer server.Close()

	result, err := gw.AdminVerifyOTP(context.Background(), "admin@example.com", "9999999999", "123456")

	require.NoError(t, err)
	assert.Equal(t, "tok-2", result.Token)
	assert.Equal(t, "sub-admin", result.Role)
}

func TestAdminVerifyOTP_Rejected(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"OTP expired"}`))
	}))
	defer server.Close()

	_, err := gw.AdminVerifyOTP(context.Background(), "admin@example.com", "9999999999", "000000")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "OTP expired")
}

func TestListSubAdmins_BareArray(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sub-admins", r.URL.Path)
		w.Write([]byte(`[{"id":"1","email":"a@example.com","status":"pending"}]`))
	}))
	defer server.Close()

	records, err := gw.ListSubAdmins(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a@example.com", records[0].Email)
}

func TestListSubAdmins_NestedEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"subAdmins key", `{"subAdmins":[{"id":"1","email":"a@example.com"},{"id":"2","email":"b@example.com"}]}`},
		{"data key", `{"data":[{"id":"1","email":"a@example.com"},{"id":"2","email":"b@example.com"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			records, err := gw.ListSubAdmins(context.Background())

			require.NoError(t, err)
			assert.Len(t, records, 2)
		})
	}
}

func TestCreateSubAdmin_Conflict(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Email already authorized"}`))
	}))
	defer server.Close()

	_, err := gw.CreateSubAdmin(context.Background(), "dup@example.com")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAlreadyExists))
}

func TestRemoveSubAdmin_PathIncludesID(t *testing.T) {
	var gotPath string
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := gw.RemoveSubAdmin(context.Background(), "abc-123")

	require.NoError(t, err)
	assert.Equal(t, "/api/sub-admins/abc-123", gotPath)
}

func TestResetSendOTP_CarriesFixedMobile(t *testing.T) {
	var query map[string][]string
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/send-otp-forgot-password", r.URL.Path)
		query = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := gw.ResetSendOTP(context.Background(), "User@Example.com", "1234567890")

	require.NoError(t, err)
	assert.Equal(t, []string{"user@example.com"}, query["email"])
	assert.Equal(t, []string{"1234567890"}, query["mobileNumber"])
}

func TestResetVerifyOTP_Rejected(t *testing.T) {
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Incorrect OTP"}`))
	}))
	defer server.Close()

	err := gw.ResetVerifyOTP(context.Background(), "user@example.com", "1234567890", "0000")

	require.Error(t, err)
	assert.False(t, apperrors.IsNetwork(err))
	assert.Contains(t, err.Error(), "Incorrect OTP")
}

func TestResetPassword_PostsJSONBody(t *testing.T) {
	var gotBody string
	gw, server := newTestGateway(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reset-password-with-otp", r.URL.Path)
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := gw.ResetPassword(context.Background(), "user@example.com", "1234567890", "4321", "newpass123")

	require.NoError(t, err)
	assert.Contains(t, gotBody, `"newPassword":"newpass123"`)
	assert.Contains(t, gotBody, `"otp":"4321"`)
}
