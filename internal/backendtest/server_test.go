// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, opts ...Option) (*Server, string) {
	t.Helper()

	s := New("cloud", logger.Nop(), opts...)
	srv, baseURL := s.Start()
	t.Cleanup(srv.Close)
	return s, baseURL
}

func clientFor(t *testing.T, baseURL, token string) adapter.BackendAdapter {
	t.Helper()

	a, err := adapter.NewHTTPBackendAdapter(adapter.BackendConfig{BaseURL: baseURL, Timeout: 5 * time.Second}, adapter.StaticToken(token), logger.Nop())
	require.NoError(t, err)
	return a
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestRegisterLoginFlow(t *testing.T) {
	_, baseURL := newTestBackend(t)
	api := clientFor(t, baseURL, "")
	ctx := context.Background()

	available, err := api.CheckUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, available)

	require.NoError(t, api.Register(ctx, models.RegisterRequest{FullName: "Alice", Username: "alice", Email: "a@example.com", Password: "secret1"}))

	available, err = api.CheckUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, available)

	err = api.Register(ctx, models.RegisterRequest{Username: "alice", Password: "x"})
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, "Username already exists", adapter.BackendMessage(err, ""))

	_, err = api.Login(ctx, models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", adapter.BackendMessage(err, ""))

	token, err := api.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	sets, err := clientFor(t, baseURL, token).ListCardSets(ctx)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestAuth_RejectsMissingAndStaleTokens(t *testing.T) {
	s, baseURL := newTestBackend(t)
	ctx := context.Background()

	_, err := clientFor(t, baseURL, "").ListCardSets(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	token := s.IssueToken("alice")
	_, err = clientFor(t, baseURL, token).ListCardSets(ctx)
	require.NoError(t, err)

	s.RotateSigningKey()
	_, err = clientFor(t, baseURL, token).ListCardSets(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestAnonymousUser(t *testing.T) {
	s, baseURL := newTestBackend(t, WithAnonymousUser("local"))
	s.SeedCardSet("local", models.CardSetInput{Name: "Spanish"}, models.CardInput{Term: "hola", Definition: "hello"})

	sets, err := clientFor(t, baseURL, "").ListCardSets(context.Background())

	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, models.AccessOwner, sets[0].AccessType)
	assert.Equal(t, 1, sets[0].TotalCards)
}

// ── Card sets and cards ─────────────────────────────────────────────────────

func TestCardSetAndCardCRUD(t *testing.T) {
	s, baseURL := newTestBackend(t)
	api := clientFor(t, baseURL, s.IssueToken("alice"))
	ctx := context.Background()

	set, err := api.CreateCardSet(ctx, models.CardSetInput{Name: "Spanish", Description: "verbs"})
	require.NoError(t, err)
	assert.NotZero(t, set.ID)
	assert.Equal(t, "alice", set.CreatorName)

	card, err := api.CreateCard(ctx, set.ID, models.CardInput{Term: "hola", Definition: "hello"})
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusNew, card.Status)

	card, err = api.UpdateCard(ctx, card.ID, models.CardInput{Term: "hola", Definition: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", card.Definition)

	set, err = api.UpdateCardSet(ctx, set.ID, models.CardSetInput{Name: "Español", IsPublic: true})
	require.NoError(t, err)
	assert.Equal(t, "Español", set.Name)
	assert.True(t, set.IsPublic)

	cards, err := api.ListCards(ctx, set.ID)
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	require.NoError(t, api.DeleteCard(ctx, card.ID))
	require.NoError(t, api.DeleteCardSet(ctx, set.ID))

	_, err = api.GetCardSet(ctx, set.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, 1, s.Calls("DELETE /api/v1/cardsets/{id}"))
}

func TestVisibility(t *testing.T) {
	s, baseURL := newTestBackend(t)
	private := s.SeedCardSet("bob", models.CardSetInput{Name: "Private"})
	public := s.SeedCardSet("bob", models.CardSetInput{Name: "Public", IsPublic: true})

	api := clientFor(t, baseURL, s.IssueToken("alice"))
	ctx := context.Background()

	sets, err := api.ListCardSets(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, public.ID, sets[0].ID)
	assert.Equal(t, models.AccessPublic, sets[0].AccessType)

	_, err = api.GetCardSet(ctx, private.ID)
	assert.ErrorIs(t, err, adapter.ErrForbidden)

	err = api.DeleteCardSet(ctx, public.ID)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestFailureInjection(t *testing.T) {
	s, baseURL := newTestBackend(t)
	api := clientFor(t, baseURL, s.IssueToken("alice"))
	ctx := context.Background()

	s.FailCardSetNamed("Broken", http.StatusInternalServerError)
	_, err := api.CreateCardSet(ctx, models.CardSetInput{Name: "Broken"})
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)

	set, err := api.CreateCardSet(ctx, models.CardSetInput{Name: "Fine"})
	require.NoError(t, err)

	s.FailCardTerm("bad", http.StatusBadRequest)
	_, err = api.CreateCard(ctx, set.ID, models.CardInput{Term: "bad", Definition: "d"})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)

	s.FailCardsOf(set.ID, http.StatusBadGateway)
	_, err = api.ListCards(ctx, set.ID)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)

	s.FailListCardSets(http.StatusInternalServerError)
	_, err = api.ListCardSets(ctx)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

// ── Study ───────────────────────────────────────────────────────────────────

func TestStudyFlow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s, baseURL := newTestBackend(t, WithClock(func() time.Time { return now }))
	set := s.SeedCardSet("alice", models.CardSetInput{Name: "Spanish"},
		models.CardInput{Term: "hola", Definition: "hello"},
		models.CardInput{Term: "adiós", Definition: "bye"},
	)

	api := clientFor(t, baseURL, s.IssueToken("alice"))
	ctx := context.Background()

	due, err := api.DueCards(ctx, set.ID)
	require.NoError(t, err)
	require.Len(t, due, 2)

	require.NoError(t, api.ReviewCard(ctx, models.Review{CardID: due[0].ID, Correct: true, Difficulty: 1}))
	require.NoError(t, api.ReviewCard(ctx, models.Review{CardID: due[1].ID, Correct: false, Difficulty: 5}))

	due, err = api.DueCards(ctx, set.ID)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "adiós", due[0].Term)

	overview, err := api.StudyOverview(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalCards)
	assert.Equal(t, 1, overview.DueCards)
	assert.Equal(t, 2, overview.LearningCards)
	assert.Equal(t, "Spanish", overview.CardSetName)

	err = api.ReviewCard(ctx, models.Review{CardID: due[0].ID, Correct: true, Difficulty: 9})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

// ── Access requests ─────────────────────────────────────────────────────────

func TestAccessRequestFlow(t *testing.T) {
	s, baseURL := newTestBackend(t)
	set := s.SeedCardSet("bob", models.CardSetInput{Name: "Private"})

	alice := clientFor(t, baseURL, s.IssueToken("alice"))
	bob := clientFor(t, baseURL, s.IssueToken("bob"))
	ctx := context.Background()

	msg, err := alice.RequestAccess(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, "Access request sent", msg.Message)

	_, err = alice.RequestAccess(ctx, set.ID)
	assert.ErrorIs(t, err, adapter.ErrConflict)

	pending, err := bob.PendingAccessRequests(ctx, set.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "alice", pending[0].RequesterUsername)

	_, err = alice.PendingAccessRequests(ctx, set.ID)
	assert.ErrorIs(t, err, adapter.ErrForbidden)

	msg, err = bob.RespondAccessRequest(ctx, set.ID, pending[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Access request approved", msg.Message)

	sets, err := alice.ListCardSets(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, models.AccessAccessible, sets[0].AccessType)

	msg, err = alice.RevokeAccess(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, "Access revoked", msg.Message)

	sets, err = alice.ListCardSets(ctx)
	require.NoError(t, err)
	assert.Empty(t, sets)
}
