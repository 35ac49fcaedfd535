package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studypartner/go-study-partner/internal/adapter"
	"github.com/studypartner/go-study-partner/internal/app"
	"github.com/studypartner/go-study-partner/internal/mock"
	"github.com/studypartner/go-study-partner/internal/store"
	"github.com/studypartner/go-study-partner/internal/validators"
	"github.com/studypartner/go-study-partner/models"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{SessionRepository: mockSessions}

	svc := NewClientAuthService(storages, mockAdapter, validators.NewStudyValidator()).(*clientAuthService)
	return svc, mockAdapter, mockSessions
}

// signedToken builds an HS256 token with the given expiry for session tests.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// ── Register ────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "alice@example.com", Password: "secret1", Name: "Alice"}
	auth := models.AuthResponse{
		Token: "signed-token",
		User:  models.User{ID: 1, Email: req.Email, Name: req.Name},
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, req).Return(auth, nil),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, auth.Token, s.Token)
				assert.Equal(t, auth.User.ID, s.UserID)
				assert.Equal(t, auth.User.Email, s.Email)
				assert.False(t, s.SavedAt.IsZero())
				return nil
			},
		),
	)

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, auth.User, user)
}

func TestClientAuthService_Register_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "alice@example.com", Password: "123", Name: "Alice",
	})

	require.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "alice@example.com", Password: "secret1", Name: "Alice"}
	transportErr := fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgUserAlreadyExists)

	mockAdapter.EXPECT().Register(ctx, req).Return(models.AuthResponse{}, transportErr)

	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginRequest{Email: "demo@studypartner.com", Password: "demo123"}
	auth := models.AuthResponse{
		Token: "signed-token",
		User:  models.User{ID: 7, Email: req.Email, Name: "Demo"},
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, req).Return(auth, nil),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil),
	)

	user, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, auth.User, user)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginRequest{Email: "demo@studypartner.com", Password: "nope"}
	transportErr := fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials)

	mockAdapter.EXPECT().Login(ctx, req).Return(models.AuthResponse{}, transportErr)

	_, err := svc.Login(ctx, req)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientAuthService_Login_SessionSaveFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginRequest{Email: "demo@studypartner.com", Password: "demo123"}
	auth := models.AuthResponse{Token: "signed-token", User: models.User{ID: 7}}

	mockAdapter.EXPECT().Login(ctx, req).Return(auth, nil)
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("disk full"))

	// login still succeeds, the user just re-authenticates next launch
	user, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.EqualValues(t, 7, user.ID)
}

// ── RestoreSession ──────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession_NoSavedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrNoSavedSession)
}

func TestClientAuthService_RestoreSession_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session := models.Session{UserID: 1, Token: signedToken(t, time.Now().Add(-time.Hour))}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(session, nil),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
	)

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, time.Now().Add(time.Hour))
	session := models.Session{UserID: 1, Email: "alice@example.com", Token: token}
	user := models.User{ID: 1, Email: "alice@example.com"}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(session, nil),
		mockAdapter.EXPECT().SetToken(token),
		mockAdapter.EXPECT().CurrentUser(ctx).Return(user, nil),
	)

	got, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestClientAuthService_RestoreSession_RejectedByServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, time.Now().Add(time.Hour))
	session := models.Session{UserID: 1, Token: token}
	transportErr := fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgUserNotAuthenticated)

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(session, nil),
		mockAdapter.EXPECT().SetToken(token),
		mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{}, transportErr),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
		mockAdapter.EXPECT().ClearToken(),
	)

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ClearToken(),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
	)

	require.NoError(t, svc.Logout(ctx))
}

// ── CurrentUser ─────────────────────────────────────────────────────────────

func TestClientAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	want := models.User{ID: 7, Email: "student@example.com", Name: "Student"}
	mockAdapter.EXPECT().CurrentUser(ctx).Return(want, nil)

	got, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientAuthService_CurrentUser_StaleToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		CurrentUser(ctx).
		Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgUserNotAuthenticated))

	_, err := svc.CurrentUser(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}
