package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/services/auth/mocks"
)

func allowList(emails ...string) []models.AuthorizationRecord {
	records := make([]models.AuthorizationRecord, 0, len(emails))
	for i, email := range emails {
		records = append(records, models.AuthorizationRecord{
			ID:     string(rune('a' + i)),
			Email:  email,
			Status: models.AuthorizationPending,
		})
	}
	return records
}

func TestRegistry_ListCachesLastGoodCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	r := newRegistry(gw)

	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("a@example.com"), nil)
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(nil, apperrors.Network(errors.New("dial tcp: timeout")))

	first, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// authority down: the last good copy is served
	second, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRegistry_ListNetworkErrorWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(nil, apperrors.Network(errors.New("dial tcp: timeout")))

	r := newRegistry(gw)
	_, err := r.List(context.Background())

	assert.True(t, apperrors.IsNetwork(err))
}

func TestRegistry_CreateLocalDuplicateCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("Existing@Example.com"), nil)

	r := newRegistry(gw)
	_, err := r.List(context.Background())
	require.NoError(t, err)

	// no CreateSubAdmin expectation: the duplicate never reaches the wire
	_, err = r.Create(context.Background(), "existing@example.com")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAlreadyExists))
}

func TestRegistry_CreateAppendsToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("a@example.com"), nil)
	gw.EXPECT().
		CreateSubAdmin(gomock.Any(), "new@example.com").
		Return(&models.AuthorizationRecord{ID: "n1", Email: "new@example.com", Status: models.AuthorizationPending}, nil)

	r := newRegistry(gw)
	_, err := r.List(context.Background())
	require.NoError(t, err)

	record, err := r.Create(context.Background(), " New@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "n1", record.ID)

	// the duplicate check now catches the fresh entry without a refetch
	_, err = r.Create(context.Background(), "new@example.com")
	assert.True(t, apperrors.IsKind(err, apperrors.KindAlreadyExists))
}

func TestRegistry_CreateInvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newRegistry(mocks.NewMockAuthGW(ctrl))

	_, err := r.Create(context.Background(), "not-an-email")

	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRegistry_RemoveDropsFromCacheOnNetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return([]models.AuthorizationRecord{
		{ID: "1", Email: "a@example.com"},
		{ID: "2", Email: "b@example.com"},
	}, nil)
	gw.EXPECT().RemoveSubAdmin(gomock.Any(), "1").Return(apperrors.Network(errors.New("dial tcp: timeout")))
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(nil, apperrors.Network(errors.New("dial tcp: timeout")))

	r := newRegistry(gw)
	_, err := r.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, r.Remove(context.Background(), "1"))

	records, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].ID)
}

func TestRegistry_RemoveExplicitRejectSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().RemoveSubAdmin(gomock.Any(), "1").Return(apperrors.Authorization("Not allowed"))

	r := newRegistry(gw)
	err := r.Remove(context.Background(), "1")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestRegistry_ValidateEmailAuthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("Allowed@Example.com"), nil)

	r := newRegistry(gw)

	assert.NoError(t, r.ValidateEmail(context.Background(), "allowed@example.com"))
}

func TestRegistry_ValidateEmailNotAuthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("other@example.com"), nil)

	r := newRegistry(gw)
	err := r.ValidateEmail(context.Background(), "stranger@example.com")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestRegistry_ValidateEmailCoalescesRepeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuthGW(ctrl)
	// a single fetch serves the burst of checks while the actor types
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("allowed@example.com"), nil).Times(1)

	r := newRegistry(gw)
	for i := 0; i < 5; i++ {
		assert.NoError(t, r.ValidateEmail(context.Background(), "Allowed@Example.com"))
	}
}

func newTestValidator(t *testing.T) (*emailValidator, *mocks.MockAuthGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gw := mocks.NewMockAuthGW(ctrl)
	v := newEmailValidator(newRegistry(gw))
	v.debounce = 5 * time.Millisecond
	return v, gw
}

func TestEmailValidator_EditDebounces(t *testing.T) {
	v, gw := newTestValidator(t)

	// only the last email of the burst is ever looked up
	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("b@example.com"), nil).Times(1)

	results := make(chan error, 2)
	v.OnEdit("a@example.com", func(err error) { results <- err })
	v.OnEdit("b@example.com", func(err error) { results <- err })

	select {
	case err := <-results:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("debounced check never ran")
	}

	select {
	case <-results:
		t.Fatal("superseded check still reported")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestEmailValidator_BlurCancelsPendingEdit(t *testing.T) {
	v, gw := newTestValidator(t)

	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("allowed@example.com"), nil).Times(1)

	edited := make(chan error, 1)
	v.OnEdit("pending@example.com", func(err error) { edited <- err })

	assert.NoError(t, v.OnBlur(context.Background(), "allowed@example.com"))

	select {
	case <-edited:
		t.Fatal("cancelled edit check still reported")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestEmailValidator_BlurReportsUnauthorized(t *testing.T) {
	v, gw := newTestValidator(t)

	gw.EXPECT().ListSubAdmins(gomock.Any()).Return(allowList("other@example.com"), nil)

	err := v.OnBlur(context.Background(), "stranger@example.com")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}
