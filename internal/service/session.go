// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/app"
	"github.com/MKhiriev/intellicard-client/internal/environment"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/store"
	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/internal/validators"
	"github.com/MKhiriev/intellicard-client/models"
)

// SessionDeps are the collaborators of the session service.
type SessionDeps struct {
	// API is the backend the user signs in to.
	API     adapter.BackendAdapter
	Session store.SessionStore
	Sync    SyncService
	Runtime environment.Runtime
	// Network reports connectivity. Nil means always online.
	Network   OnlineChecker
	Notifier  Notifier
	Validator validators.Validator
}

type sessionService struct {
	api       adapter.BackendAdapter
	session   store.SessionStore
	sync      SyncService
	runtime   environment.Runtime
	network   OnlineChecker
	notifier  Notifier
	validator validators.Validator

	mu   sync.RWMutex
	user *models.User

	logger *logger.Logger
}

// NewSessionService constructs the session service. The session starts
// signed out; call RestoreSession to pick up a persisted one.
func NewSessionService(deps SessionDeps, log *logger.Logger) SessionService {
	s := &sessionService{
		api:       deps.API,
		session:   deps.Session,
		sync:      deps.Sync,
		runtime:   deps.Runtime,
		network:   deps.Network,
		notifier:  deps.Notifier,
		validator: deps.Validator,
		logger:    log,
	}
	if s.notifier == nil {
		s.notifier = NopNotifier{}
	}
	return s
}

func (s *sessionService) RestoreSession(ctx context.Context) (models.User, error) {
	user, err := s.session.User(ctx)
	switch {
	case errors.Is(err, store.ErrCorruptedValue):
		s.logger.Warn().Str("func", "sessionService.RestoreSession").Msg("stored user is corrupted, clearing session")
		if clearErr := s.session.ClearSession(ctx); clearErr != nil {
			return models.User{}, fmt.Errorf("clear corrupted session: %w", clearErr)
		}
		s.setUser(nil)
		return models.User{}, ErrSessionNotFound
	case errors.Is(err, store.ErrKeyNotFound):
		return models.User{}, ErrSessionNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("read stored user: %w", err)
	}

	token, err := s.session.SessionToken(ctx)
	if errors.Is(err, store.ErrKeyNotFound) || (err == nil && token == "") {
		return models.User{}, ErrSessionNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("read session token: %w", err)
	}

	s.setUser(&user)
	s.logger.Info().Str("func", "sessionService.RestoreSession").Str("username", user.Username).Msg("session restored")
	return user, nil
}

func (s *sessionService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		message := adapter.BackendMessage(err, app.MsgLoginFailed)
		s.notifier.Error(message)
		return models.User{}, &UserError{Message: message, Err: fmt.Errorf("%w: %w", ErrLoginFailed, err)}
	}

	username := creds.Username
	if username == "" {
		username = utils.ParseTokenUnverified(token).Subject
	}
	user := models.User{Username: username}

	if err = s.session.SetSessionToken(ctx, token); err != nil {
		return models.User{}, fmt.Errorf("store session token: %w", err)
	}
	if err = s.session.SetUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("store user: %w", err)
	}

	s.setUser(&user)
	s.logger.Info().Str("func", "sessionService.Login").Str("username", username).Msg("logged in")
	return user, nil
}

func (s *sessionService) Register(ctx context.Context, req models.RegisterRequest) error {
	if s.validator != nil {
		if err := s.validator.Validate(ctx, req); err != nil {
			var verr *validators.ValidationError
			if errors.As(err, &verr) {
				return &UserError{Message: verr.First(), Err: err}
			}
			return err
		}
	}

	if err := s.api.Register(ctx, req); err != nil {
		message := adapter.BackendMessage(err, app.MsgRegistrationFailed)
		s.notifier.Error(message)
		return &UserError{Message: message, Err: fmt.Errorf("%w: %w", ErrRegisterFailed, err)}
	}

	s.notifier.Success(app.MsgRegistrationSuccess)
	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.setUser(nil)
	if err := s.session.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.notifier.Success(app.MsgLoggedOut)
	return nil
}

func (s *sessionService) CheckUsername(ctx context.Context, username string) bool {
	available, err := s.api.CheckUsername(ctx, username)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "sessionService.CheckUsername").Msg("username check failed")
		return false
	}
	return available
}

func (s *sessionService) HandleUnauthorized() {
	if !s.IsAuthenticated() {
		return
	}

	s.setUser(nil)
	if err := s.session.ClearSession(context.Background()); err != nil {
		s.logger.Err(err).Str("func", "sessionService.HandleUnauthorized").Msg("failed to clear session")
	}
	s.notifier.Error(app.MsgSessionExpired)
}

func (s *sessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *sessionService) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

func (s *sessionService) IsDesktop() bool {
	return s.runtime.IsDesktop()
}

func (s *sessionService) IsOnline() bool {
	return s.network == nil || s.network.IsOnline()
}

func (s *sessionService) Features() models.FeatureFlags {
	return environment.Flags(s.IsDesktop(), s.IsOnline())
}

func (s *sessionService) UnavailableFeatures() []models.UnavailableFeature {
	return environment.UnavailableFeatures(s.IsDesktop(), s.IsOnline())
}

func (s *sessionService) SyncToCloud(ctx context.Context) (models.PushResult, error) {
	if err := s.requireSync(); err != nil {
		return models.PushResult{}, err
	}
	return s.sync.SyncToCloud(ctx)
}

func (s *sessionService) SyncFromCloud(ctx context.Context) (models.PullResult, error) {
	if err := s.requireSync(); err != nil {
		return models.PullResult{}, err
	}
	return s.sync.SyncFromCloud(ctx)
}

func (s *sessionService) ClearLocalData(ctx context.Context) error {
	if !s.IsDesktop() {
		return ErrDesktopOnly
	}
	return s.sync.ClearLocalData(ctx)
}

func (s *sessionService) ClearCloudAuth(ctx context.Context) error {
	if !s.IsDesktop() {
		return ErrDesktopOnly
	}
	return s.sync.ClearCloudAuth(ctx)
}

func (s *sessionService) ResetSyncFlag() {
	s.sync.ResetSyncFlag()
}

func (s *sessionService) GetSyncStatus(ctx context.Context) (models.SyncStatus, error) {
	if !s.IsDesktop() {
		return models.SyncStatus{}, ErrDesktopOnly
	}

	status := s.sync.GetSyncStatus(ctx)
	token, err := s.session.CloudToken(ctx)
	status.HasCloudToken = err == nil && token != ""
	return status, nil
}

// requireSync checks the preconditions shared by both sync directions.
func (s *sessionService) requireSync() error {
	if !s.IsDesktop() {
		return ErrDesktopOnly
	}
	if !s.IsOnline() {
		return ErrOffline
	}
	return nil
}

func (s *sessionService) setUser(user *models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}
