// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/app"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/store"
	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/models"
)

// SyncDeps are the collaborators of the sync service.
type SyncDeps struct {
	// Local is the local backend client. It sends no credentials.
	Local adapter.BackendAdapter
	// CloudFactory builds cloud clients for the current cloud token.
	CloudFactory CloudClientFactory
	// Session holds the user, the cloud token and the last sync time.
	Session store.SessionStore
	// Notifier receives progress and outcome messages. Nil discards them.
	Notifier Notifier
	// PasswordPrompt obtains the cloud password. Nil makes every cloud
	// login fail with ErrPasswordPromptNotSet.
	PasswordPrompt PasswordPrompt
	// Clock stamps the last sync time. Nil means time.Now.
	Clock func() time.Time
}

type syncService struct {
	local        adapter.BackendAdapter
	cloudFactory CloudClientFactory
	session      store.SessionStore
	notifier     Notifier
	prompt       PasswordPrompt
	now          func() time.Time

	// holder is the id of the run owning the lock, 0 when free.
	holder atomic.Uint64
	runs   atomic.Uint64

	// cloud is the cached client bound to cloudToken.
	mu         sync.Mutex
	cloud      adapter.BackendAdapter
	cloudToken string

	logger *logger.Logger
}

// NewSyncService constructs the sync coordinator.
func NewSyncService(deps SyncDeps, log *logger.Logger) SyncService {
	s := &syncService{
		local:        deps.Local,
		cloudFactory: deps.CloudFactory,
		session:      deps.Session,
		notifier:     deps.Notifier,
		prompt:       deps.PasswordPrompt,
		now:          deps.Clock,
		logger:       log,
	}
	if s.notifier == nil {
		s.notifier = NopNotifier{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// cloudClient returns the cached cloud client when it is bound to token and
// builds a new one otherwise.
func (s *syncService) cloudClient(token string) (adapter.BackendAdapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cloud != nil && s.cloudToken == token {
		return s.cloud, nil
	}

	client, err := s.cloudFactory.Cloud(token)
	if err != nil {
		return nil, fmt.Errorf("build cloud client: %w", err)
	}
	s.cloud, s.cloudToken = client, token
	return client, nil
}

func (s *syncService) invalidateCloudClient() {
	s.mu.Lock()
	s.cloud, s.cloudToken = nil, ""
	s.mu.Unlock()
}

func (s *syncService) AuthenticateWithCloud(ctx context.Context) (string, error) {
	user, err := s.session.User(ctx)
	switch {
	case errors.Is(err, store.ErrKeyNotFound), errors.Is(err, store.ErrCorruptedValue):
		return "", ErrNoStoredUser
	case err != nil:
		return "", fmt.Errorf("%w: read stored user: %w", ErrCloudAuthFailed, err)
	}

	if s.prompt == nil {
		return "", ErrPasswordPromptNotSet
	}

	password, err := s.prompt(ctx, user.Username)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordRequired, err)
	}
	if password == "" {
		return "", ErrPasswordRequired
	}

	anonymous, err := s.cloudFactory.Cloud("")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCloudAuthFailed, err)
	}

	token, err := anonymous.Login(ctx, models.Credentials{Username: user.Username, Password: password})
	if err != nil {
		s.logger.Info().Err(err).Str("func", "syncService.AuthenticateWithCloud").Msg("cloud login rejected")
		return "", fmt.Errorf("%w: %w", ErrCloudAuthFailed, err)
	}

	if err = s.session.SetCloudToken(ctx, token); err != nil {
		return "", fmt.Errorf("%w: store cloud token: %w", ErrCloudAuthFailed, err)
	}

	if _, err = s.cloudClient(token); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCloudAuthFailed, err)
	}

	s.logger.Info().Str("func", "syncService.AuthenticateWithCloud").Str("username", user.Username).Msg("authenticated with cloud")
	return token, nil
}

func (s *syncService) EnsureCloudAuth(ctx context.Context) (string, error) {
	token, err := s.session.CloudToken(ctx)
	if errors.Is(err, store.ErrKeyNotFound) || (err == nil && token == "") {
		return s.AuthenticateWithCloud(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("read cloud token: %w", err)
	}

	cloud, err := s.cloudClient(token)
	if err != nil {
		return "", err
	}

	if _, err = cloud.ListCardSets(ctx); err != nil {
		if adapter.IsAuthError(err) {
			s.logger.Info().Str("func", "syncService.EnsureCloudAuth").Msg("cached cloud token rejected, re-authenticating")
			return s.AuthenticateWithCloud(ctx)
		}
		return "", err
	}

	return token, nil
}

func (s *syncService) GetSyncStatus(ctx context.Context) models.SyncStatus {
	var status models.SyncStatus

	if token, err := s.session.CloudToken(ctx); err == nil && token != "" {
		status.HasCloudToken = true
	}
	if last, err := s.session.LastSyncTime(ctx); err == nil {
		status.LastSync = last
	}

	sets, err := s.local.ListCardSets(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "syncService.GetSyncStatus").Msg("local backend unavailable")
		return status
	}

	totalCards := 0
	for _, set := range sets {
		cards, err := s.local.ListCards(ctx, set.ID)
		if err != nil {
			s.logger.Debug().Err(err).Int64("card_set_id", set.ID).Str("func", "syncService.GetSyncStatus").Msg("failed to count local cards")
			return status
		}
		totalCards += len(cards)
	}

	status.TotalCardSets = len(sets)
	status.TotalCards = totalCards
	return status
}

func (s *syncService) SyncToCloud(ctx context.Context) (models.PushResult, error) {
	run, ok := s.acquire()
	if !ok {
		return models.PushResult{}, ErrSyncInProgress
	}
	defer s.release(run)

	log := s.runLogger("push")

	s.notifier.Loading(SyncProgressKey, app.MsgAuthenticatingWithCloud)
	token, err := s.EnsureCloudAuth(ctx)
	if err != nil {
		return models.PushResult{}, s.fail(log, err, app.MsgSyncToCloudFailed)
	}
	cloud, err := s.cloudClient(token)
	if err != nil {
		return models.PushResult{}, s.fail(log, err, app.MsgSyncToCloudFailed)
	}

	s.notifier.Loading(SyncProgressKey, app.MsgSyncingToCloud)

	sets, err := s.local.ListCardSets(ctx)
	if err != nil {
		return models.PushResult{}, s.fail(log, fmt.Errorf("list local card sets: %w", err), app.MsgSyncToCloudFailed)
	}
	if len(sets) == 0 {
		s.notifier.Dismiss(SyncProgressKey)
		s.notifier.Success(app.MsgNoCardSetsToSync)
		return models.PushResult{Success: true}, nil
	}

	result := models.PushResult{CardSets: len(sets)}
	for _, set := range sets {
		if err = ctx.Err(); err != nil {
			return result, s.fail(log, err, app.MsgSyncToCloudFailed)
		}

		copied, err := copyCardSet(ctx, s.local, cloud, set)
		result.SuccessCount += copied
		if err != nil {
			result.ErrorCount++
			log.Warn().Err(err).Int64("card_set_id", set.ID).Msg("failed to copy card set to cloud")
		}
	}

	s.recordSync(ctx, log)
	s.notifier.Dismiss(SyncProgressKey)

	result.Success = result.ErrorCount == 0
	if result.Success {
		s.notifier.Success(fmt.Sprintf(app.MsgPushCompleteFormat, len(sets), result.SuccessCount))
	} else {
		s.notifier.Error(fmt.Sprintf(app.MsgSyncedWithErrorsFormat, result.ErrorCount))
	}

	log.Info().
		Int("card_sets", len(sets)).
		Int("cards", result.SuccessCount).
		Int("errors", result.ErrorCount).
		Msg("push finished")

	return result, nil
}

func (s *syncService) SyncFromCloud(ctx context.Context) (models.PullResult, error) {
	run, ok := s.acquire()
	if !ok {
		return models.PullResult{}, ErrSyncInProgress
	}
	defer s.release(run)

	log := s.runLogger("pull")

	s.notifier.Loading(SyncProgressKey, app.MsgAuthenticatingWithCloud)
	token, err := s.EnsureCloudAuth(ctx)
	if err != nil {
		return models.PullResult{}, s.fail(log, err, app.MsgSyncFromCloudFailed)
	}
	cloud, err := s.cloudClient(token)
	if err != nil {
		return models.PullResult{}, s.fail(log, err, app.MsgSyncFromCloudFailed)
	}

	s.notifier.Loading(SyncProgressKey, app.MsgSyncingFromCloud)

	sets, err := cloud.ListCardSets(ctx)
	if err != nil {
		return models.PullResult{}, s.fail(log, fmt.Errorf("list cloud card sets: %w", err), app.MsgSyncFromCloudFailed)
	}
	if len(sets) == 0 {
		s.notifier.Dismiss(SyncProgressKey)
		s.notifier.Success(app.MsgNoCardSetsInCloud)
		return models.PullResult{Success: true}, nil
	}

	var result models.PullResult
	for _, set := range sets {
		if err = ctx.Err(); err != nil {
			return result, s.fail(log, err, app.MsgSyncFromCloudFailed)
		}

		copied, err := copyCardSet(ctx, cloud, s.local, set)
		result.CardsUpdated += copied
		if err != nil {
			result.ErrorCount++
			log.Warn().Err(err).Int64("card_set_id", set.ID).Msg("failed to copy card set from cloud")
			continue
		}
		result.CardSetsUpdated++
	}

	s.recordSync(ctx, log)
	s.notifier.Dismiss(SyncProgressKey)

	result.Success = result.ErrorCount == 0
	if result.Success {
		s.notifier.Success(fmt.Sprintf(app.MsgPullCompleteFormat, result.CardSetsUpdated, result.CardsUpdated))
	} else {
		s.notifier.Error(fmt.Sprintf(app.MsgSyncedWithErrorsFormat, result.ErrorCount))
	}

	log.Info().
		Int("card_sets", result.CardSetsUpdated).
		Int("cards", result.CardsUpdated).
		Int("errors", result.ErrorCount).
		Msg("pull finished")

	return result, nil
}

// copyCardSet creates set on dst, then copies the cards of set from src
// into it. It returns the number of cards created before the first error.
// Cards are never attempted when the set itself cannot be created.
func copyCardSet(ctx context.Context, src, dst adapter.BackendAdapter, set models.CardSet) (int, error) {
	created, err := dst.CreateCardSet(ctx, set.Input())
	if err != nil {
		return 0, fmt.Errorf("create card set %q: %w", set.Name, err)
	}

	cards, err := src.ListCards(ctx, set.ID)
	if err != nil {
		return 0, fmt.Errorf("list cards of card set %d: %w", set.ID, err)
	}

	copied := 0
	for _, card := range cards {
		if _, err = dst.CreateCard(ctx, created.ID, card.Input()); err != nil {
			return copied, fmt.Errorf("create card %d in card set %d: %w", card.ID, created.ID, err)
		}
		copied++
	}
	return copied, nil
}

func (s *syncService) ClearLocalData(ctx context.Context) error {
	sets, err := s.local.ListCardSets(ctx)
	if err != nil {
		s.notifier.Error(app.MsgClearLocalDataFailed)
		return fmt.Errorf("list local card sets: %w", err)
	}

	for _, set := range sets {
		if err = s.local.DeleteCardSet(ctx, set.ID); err != nil {
			s.notifier.Error(app.MsgClearLocalDataFailed)
			return fmt.Errorf("delete local card set %d: %w", set.ID, err)
		}
	}

	s.logger.Info().Str("func", "syncService.ClearLocalData").Int("card_sets", len(sets)).Msg("local data cleared")
	s.notifier.Success(app.MsgLocalDataCleared)
	return nil
}

func (s *syncService) ClearCloudAuth(ctx context.Context) error {
	s.invalidateCloudClient()

	if err := s.session.DeleteCloudToken(ctx); err != nil {
		return fmt.Errorf("delete cloud token: %w", err)
	}
	return nil
}

func (s *syncService) acquire() (uint64, bool) {
	run := s.runs.Add(1)
	return run, s.holder.CompareAndSwap(0, run)
}

// release frees the lock only while run still owns it. A run unwinding after
// ResetSyncFlag must not free the lock of the run that started after it.
func (s *syncService) release(run uint64) {
	s.holder.CompareAndSwap(run, 0)
}

func (s *syncService) ResetSyncFlag() {
	s.holder.Store(0)
}

func (s *syncService) InProgress() bool {
	return s.holder.Load() != 0
}

func (s *syncService) runLogger(direction string) *logger.Logger {
	return &logger.Logger{Logger: s.logger.With().
		Str("sync_id", utils.NewCorrelationID()).
		Str("direction", direction).
		Logger()}
}

func (s *syncService) recordSync(ctx context.Context, log *logger.Logger) {
	if err := s.session.SetLastSyncTime(ctx, s.now()); err != nil {
		log.Err(err).Msg("failed to record last sync time")
	}
}

// fail dismisses the progress message and shows the auth message for
// authentication failures or fallback for anything else.
func (s *syncService) fail(log *logger.Logger, err error, fallback string) error {
	s.notifier.Dismiss(SyncProgressKey)
	if IsAuthFailure(err) {
		s.notifier.Error(UserMessage(err))
	} else {
		s.notifier.Error(fallback)
	}

	log.Err(err).Msg("sync failed")
	return err
}
