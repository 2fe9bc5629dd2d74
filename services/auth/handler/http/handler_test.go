package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
	"github.com/kiranakart/auth-service/services/auth/mocks"
)

func setupHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(uc), uc
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLogin_Success(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		Login(gomock.Any(), "user@example.com", "password1").
		Return(&models.Outcome{
			Status:   models.OutcomeAuthenticated,
			Identity: &models.Identity{Email: "user@example.com", Role: models.RoleCustomer, Token: "tok-1"},
		}, nil)

	req, rec := jsonRequest(http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"password1"}`)
	require.NoError(t, h.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestLogin_Rejected(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		Login(gomock.Any(), "user@example.com", "wrong").
		Return(&models.Outcome{Status: models.OutcomeRejected, Reason: "Invalid credentials"}, nil)

	req, rec := jsonRequest(http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLogin_ValidationError(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		Login(gomock.Any(), "bad", "password1").
		Return(nil, apperrors.Validation("Please enter a valid email address"))

	req, rec := jsonRequest(http.MethodPost, "/auth/login", `{"email":"bad","password":"password1"}`)
	require.NoError(t, h.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_NetworkErrorMapsTo503(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Network(assert.AnError))

	req, rec := jsonRequest(http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"password1"}`)
	require.NoError(t, h.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	// the underlying error never leaks to the actor
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestAdminLogin_NeedsSecondFactorReturns202(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		AdminLogin(gomock.Any(), "admin@example.com", "password1").
		Return(&models.Outcome{
			Status:    models.OutcomeNeedsSecondFactor,
			Identity:  &models.Identity{Email: "admin@example.com", Role: models.RoleSubAdmin},
			Challenge: &models.OTPChallenge{State: models.ChallengeSent, Target: "admin@example.com", CooldownRemaining: 60},
		}, nil)

	req, rec := jsonRequest(http.MethodPost, "/auth/admin/login", `{"email":"admin@example.com","password":"password1"}`)
	require.NoError(t, h.AdminLogin(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "needs_second_factor")
}

func TestAdminLogin_SuperAdminReturns200(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		AdminLogin(gomock.Any(), "owner@kiranakart.com", "S3cret!Pass").
		Return(&models.Outcome{
			Status:   models.OutcomeAuthenticated,
			Identity: &models.Identity{Email: "owner@kiranakart.com", Role: models.RoleSuperAdmin, Token: "tok"},
		}, nil)

	req, rec := jsonRequest(http.MethodPost, "/auth/admin/login", `{"email":"owner@kiranakart.com","password":"S3cret!Pass"}`)
	require.NoError(t, h.AdminLogin(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		VerifyOTP(gomock.Any(), "123456").
		Return(&models.Session{
			Identity: models.Identity{Email: "admin@example.com", Role: models.RoleSubAdmin, Token: "tok-2"},
		}, nil)

	req, rec := jsonRequest(http.MethodPost, "/auth/otp/verify", `{"code":"123456"}`)
	require.NoError(t, h.VerifyOTP(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestVerifyOTP_ConflictWhenNothingPending(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		VerifyOTP(gomock.Any(), "123456").
		Return(nil, apperrors.New(apperrors.KindConflict, "no login pending verification"))

	req, rec := jsonRequest(http.MethodPost, "/auth/otp/verify", `{"code":"123456"}`)
	require.NoError(t, h.VerifyOTP(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateSubAdmin_Conflict(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		CreateSubAdmin(gomock.Any(), "dup@example.com").
		Return(nil, apperrors.AlreadyExists("Email already authorized"))

	req, rec := jsonRequest(http.MethodPost, "/admin/sub-admins", `{"email":"dup@example.com"}`)
	require.NoError(t, h.CreateSubAdmin(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRemoveSubAdmin_UsesPathParam(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().RemoveSubAdmin(gomock.Any(), "abc-123").Return(nil)

	req, rec := jsonRequest(http.MethodDelete, "/admin/sub-admins/abc-123", "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc-123")
	require.NoError(t, h.RemoveSubAdmin(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterSubAdmin_PassesConfirmation(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		RegisterSubAdmin(gomock.Any(), gomock.Any(), "password1").
		DoAndReturn(func(_ context.Context, req *models.SubAdminSignupRequest, _ string) error {
			assert.Equal(t, "new@example.com", req.Email)
			assert.Equal(t, "Asha", req.FirstName)
			return nil
		})

	body := `{"email":"new@example.com","password":"password1","confirmPassword":"password1","firstName":"Asha","lastName":"Rao"}`
	req, rec := jsonRequest(http.MethodPost, "/auth/admin/signup", body)
	require.NoError(t, h.RegisterSubAdmin(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestValidateSubAdminEmail_NotAuthorized(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		ValidateSubAdminEmail(gomock.Any(), "stranger@example.com").
		Return(apperrors.Authorization("This email is not authorized for sub-admin registration"))

	req, rec := jsonRequest(http.MethodPost, "/auth/admin/signup/validate-email", `{"email":"stranger@example.com"}`)
	require.NoError(t, h.ValidateSubAdminEmail(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidateSubAdminEmail_EditTriggerSchedules(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	// an edit only schedules the debounced check; no immediate verdict
	uc.EXPECT().NoteSubAdminEmailEdit("typing@example.com")

	req, rec := jsonRequest(http.MethodPost, "/auth/admin/signup/validate-email", `{"email":"typing@example.com","trigger":"edit"}`)
	require.NoError(t, h.ValidateSubAdminEmail(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestResetFlowEndpoints(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().
		ResetSubmitEmail(gomock.Any(), "user@example.com").
		Return(&models.PasswordResetState{Stage: models.ResetStageOTP, Email: "user@example.com", CooldownRemaining: 60}, nil)

	req, rec := jsonRequest(http.MethodPost, "/auth/reset/email", `{"email":"user@example.com"}`)
	require.NoError(t, h.ResetSubmitEmail(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stage":"otp"`)

	uc.EXPECT().
		ResetSubmitOTP(gomock.Any(), "1234").
		Return(&models.PasswordResetState{Stage: models.ResetStagePassword, Email: "user@example.com"}, nil)

	req, rec = jsonRequest(http.MethodPost, "/auth/reset/otp", `{"code":"1234"}`)
	require.NoError(t, h.ResetSubmitOTP(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.EXPECT().
		ResetSubmitPassword(gomock.Any(), "newpass12", "newpass12").
		Return(&models.PasswordResetState{Stage: models.ResetStageDone}, nil)

	req, rec = jsonRequest(http.MethodPost, "/auth/reset/password", `{"new_password":"newpass12","confirm_password":"newpass12"}`)
	require.NoError(t, h.ResetSubmitPassword(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stage":"done"`)
}

func TestGetSession_NotFoundWhenUnauthenticated(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().CurrentSession().Return(nil)

	req, rec := jsonRequest(http.MethodGet, "/auth/session", "")
	require.NoError(t, h.GetSession(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogout(t *testing.T) {
	h, uc := setupHandler(t)
	e := echo.New()

	uc.EXPECT().Logout(gomock.Any()).Return(nil)

	req, rec := jsonRequest(http.MethodPost, "/auth/logout", "")
	require.NoError(t, h.Logout(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
}
