// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/backendtest"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/store"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncEnv struct {
	svc      SyncService
	local    *backendtest.Server
	cloud    *backendtest.Server
	session  store.SessionStore
	notifier *recordingNotifier
	prompts  int
}

// newSyncEnv поднимает локальный и облачный бэкенды и хранилище сессии на bbolt.
func newSyncEnv(t *testing.T) *syncEnv {
	t.Helper()

	env := &syncEnv{notifier: &recordingNotifier{}}

	env.local = backendtest.New("local", logger.Nop(), backendtest.WithAnonymousUser("desktop"))
	localSrv, localURL := env.local.Start()
	t.Cleanup(localSrv.Close)

	env.cloud = backendtest.New("cloud", logger.Nop())
	env.cloud.AddUser("alice", "secret")
	cloudSrv, cloudURL := env.cloud.Start()
	t.Cleanup(cloudSrv.Close)

	kv, err := store.NewBoltKeyValueStore(filepath.Join(t.TempDir(), "state.db"), "desktop", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	env.session = store.NewSessionStore(kv, logger.Nop())
	require.NoError(t, env.session.SetUser(context.Background(), models.User{Username: "alice"}))

	factory := adapter.NewFactory(
		adapter.BackendConfig{BaseURL: localURL, Timeout: 5 * time.Second},
		adapter.BackendConfig{BaseURL: cloudURL, Timeout: 5 * time.Second},
		logger.Nop(),
	)
	localAPI, err := factory.Local(adapter.StaticToken(""))
	require.NoError(t, err)

	env.svc = NewSyncService(SyncDeps{
		Local:        localAPI,
		CloudFactory: factory,
		Session:      env.session,
		Notifier:     env.notifier,
		PasswordPrompt: func(context.Context, string) (string, error) {
			env.prompts++
			return "secret", nil
		},
		Clock: func() time.Time { return syncNow },
	}, logger.Nop())

	return env
}

func TestSyncIntegration_PushThenPull(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	env.local.SeedCardSet("desktop", models.CardSetInput{Name: "Spanish", Description: "Verbs", IsPublic: true},
		models.CardInput{Term: "hablar", Definition: "to speak"},
		models.CardInput{Term: "comer", Definition: "to eat"},
	)
	env.local.SeedCardSet("desktop", models.CardSetInput{Name: "Empty"})

	status := env.svc.GetSyncStatus(ctx)
	assert.Equal(t, models.SyncStatus{TotalCardSets: 2, TotalCards: 2}, status)

	push, err := env.svc.SyncToCloud(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PushResult{Success: true, CardSets: 2, SuccessCount: 2}, push)
	assert.Equal(t, 1, env.prompts)

	cloudSets := env.cloud.CardSets("alice")
	require.Len(t, cloudSets, 2)
	assert.Equal(t, "Spanish", cloudSets[0].Name)
	assert.True(t, cloudSets[0].IsPublic)
	assert.Len(t, env.cloud.Cards(cloudSets[0].ID), 2)

	status = env.svc.GetSyncStatus(ctx)
	assert.True(t, status.HasCloudToken)
	require.NotNil(t, status.LastSync)
	assert.True(t, status.LastSync.Equal(syncNow))

	require.NoError(t, env.svc.ClearLocalData(ctx))
	assert.Empty(t, env.local.CardSets("desktop"))

	pull, err := env.svc.SyncFromCloud(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PullResult{Success: true, CardSetsUpdated: 2, CardsUpdated: 2}, pull)

	// кэшированный токен прошёл проверку, пароль больше не спрашивали
	assert.Equal(t, 1, env.prompts)

	localSets := env.local.CardSets("desktop")
	require.Len(t, localSets, 2)
	assert.Equal(t, "Verbs", localSets[0].Description)
}

func TestSyncIntegration_RepeatedPushDuplicates(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	env.local.SeedCardSet("desktop", models.CardSetInput{Name: "Capitals"}, models.CardInput{Term: "France", Definition: "Paris"})

	_, err := env.svc.SyncToCloud(ctx)
	require.NoError(t, err)
	_, err = env.svc.SyncToCloud(ctx)
	require.NoError(t, err)

	assert.Len(t, env.cloud.CardSets("alice"), 2)
}

func TestSyncIntegration_ExpiredCloudTokenReauthenticates(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	env.local.SeedCardSet("desktop", models.CardSetInput{Name: "Capitals"})

	_, err := env.svc.SyncToCloud(ctx)
	require.NoError(t, err)

	env.cloud.RotateSigningKey()

	_, err = env.svc.SyncToCloud(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, env.prompts)
	assert.Len(t, env.cloud.CardSets("alice"), 2)
}

func TestSyncIntegration_PartialPush(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	env.local.SeedCardSet("desktop", models.CardSetInput{Name: "Rejected"}, models.CardInput{Term: "x", Definition: "y"})
	env.local.SeedCardSet("desktop", models.CardSetInput{Name: "Accepted"}, models.CardInput{Term: "a", Definition: "b"})
	env.cloud.FailCardSetNamed("Rejected", http.StatusInternalServerError)

	push, err := env.svc.SyncToCloud(ctx)
	require.NoError(t, err)

	assert.False(t, push.Success)
	assert.Equal(t, 1, push.ErrorCount)
	assert.Equal(t, 1, push.SuccessCount)
	// карточки отклонённого набора не отправлялись
	assert.Equal(t, 1, env.cloud.Calls("POST /api/v1/cards/cardset/{id}"))
}

func TestSyncIntegration_WrongPassword(t *testing.T) {
	env := newSyncEnv(t)
	env.cloud.AddUser("alice", "another")
	ctx := context.Background()

	_, err := env.svc.SyncToCloud(ctx)

	require.ErrorIs(t, err, ErrCloudAuthFailed)
	assert.Equal(t, "error:Failed to authenticate with cloud. Please check your credentials.", env.notifier.Last())

	_, err = env.session.CloudToken(ctx)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}
