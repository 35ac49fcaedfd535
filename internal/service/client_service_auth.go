package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studypartner/go-study-partner/internal/adapter"
	"github.com/studypartner/go-study-partner/internal/logger"
	"github.com/studypartner/go-study-partner/internal/store"
	"github.com/studypartner/go-study-partner/internal/utils"
	"github.com/studypartner/go-study-partner/internal/validators"
	"github.com/studypartner/go-study-partner/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	validator  validators.Validator
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, validator validators.Validator) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, validator: validator}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	auth, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.persistSession(ctx, auth)

	return auth.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	auth, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.persistSession(ctx, auth)

	return auth.User, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.User{}, ErrNoSavedSession
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load saved session: %w", err)
	}

	if utils.IsTokenExpired(session.Token) {
		a.dropSession(ctx)
		return models.User{}, ErrSessionExpired
	}

	a.adapter.SetToken(session.Token)

	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrSessionExpired) {
			a.dropSession(ctx)
			a.adapter.ClearToken()
			return models.User{}, ErrSessionExpired
		}
		log.Err(err).Str("func", "clientAuthService.RestoreSession").Msg("session validation request failed")
		a.adapter.ClearToken()
		return models.User{}, mapped
	}

	return user, nil
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.User, error) {
	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.ClearToken()

	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete saved session: %w", err)
	}

	return nil
}

// persistSession stores the fresh login state locally. Persistence failures
// only cost the user a re-login next launch, so they are logged, not
// returned.
func (a *clientAuthService) persistSession(ctx context.Context, auth models.AuthResponse) {
	log := logger.FromContext(ctx)

	session := models.Session{
		UserID:  auth.User.ID,
		Email:   auth.User.Email,
		Name:    auth.User.Name,
		Token:   auth.Token,
		SavedAt: time.Now(),
	}
	if err := a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		log.Err(err).Str("func", "clientAuthService.persistSession").Msg("failed to persist session")
	}
}

func (a *clientAuthService) dropSession(ctx context.Context) {
	log := logger.FromContext(ctx)

	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		log.Err(err).Str("func", "clientAuthService.dropSession").Msg("failed to delete stale session")
	}
}
