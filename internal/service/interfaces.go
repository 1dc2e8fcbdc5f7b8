// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's application logic on top of the
// backend adapters and the persisted session.
//
//   - [SyncService] copies card sets and cards between the local backend and
//     the cloud backend and reports the sync state.
//   - [SessionService] owns the signed-in session, gates sync behind the
//     desktop and online checks, and exposes the feature flags.
//   - [LibraryService] relays card-set, card, study and access-request calls
//     to the session backend.
//
// User feedback goes through the [Notifier] passed in by the UI layer.
package service

import (
	"context"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncProgressKey identifies the replaceable progress notification of a
// running sync.
const SyncProgressKey = "sync-progress"

// Notifier displays short-lived messages to the user.
type Notifier interface {
	// Loading shows or replaces the progress message identified by key.
	Loading(key, message string)
	// Dismiss removes the progress message identified by key.
	Dismiss(key string)
	Success(message string)
	Error(message string)
}

// PasswordPrompt asks the user for the password of username. It may block
// until the user answers; a cancelled prompt returns an empty password or an
// error. ctx cancellation must unblock it.
type PasswordPrompt func(ctx context.Context, username string) (string, error)

// CloudClientFactory builds cloud clients bound to a bearer token. An empty
// token yields an unauthenticated client.
type CloudClientFactory interface {
	Cloud(token string) (adapter.BackendAdapter, error)
}

// OnlineChecker reports network availability.
type OnlineChecker interface {
	IsOnline() bool
}

// SyncService moves card sets and their cards between the local backend and
// the cloud backend. At most one sync runs at a time per instance.
type SyncService interface {
	// AuthenticateWithCloud prompts for the stored user's password, logs in
	// to the cloud and stores the returned token.
	AuthenticateWithCloud(ctx context.Context) (string, error)

	// EnsureCloudAuth returns a cloud token known to be accepted, probing a
	// cached token and re-authenticating once if the cloud rejects it.
	EnsureCloudAuth(ctx context.Context) (string, error)

	// GetSyncStatus never fails: local backend errors yield zero counts.
	GetSyncStatus(ctx context.Context) models.SyncStatus

	// SyncToCloud copies every local card set and its cards to the cloud.
	SyncToCloud(ctx context.Context) (models.PushResult, error)

	// SyncFromCloud copies every cloud card set and its cards to the local
	// backend.
	SyncFromCloud(ctx context.Context) (models.PullResult, error)

	// ClearLocalData deletes every card set of the local backend.
	ClearLocalData(ctx context.Context) error

	// ClearCloudAuth forgets the cloud token. Nothing is revoked remotely.
	ClearCloudAuth(ctx context.Context) error

	// ResetSyncFlag releases the single-operation lock unconditionally.
	ResetSyncFlag()

	// InProgress reports whether a sync currently holds the lock.
	InProgress() bool
}

// SessionService owns the signed-in session of the interactive client.
type SessionService interface {
	RestoreSession(ctx context.Context) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context) error

	// CheckUsername reports whether username is still free. Errors count as
	// not available.
	CheckUsername(ctx context.Context, username string) bool

	// HandleUnauthorized drops the session after the backend answered 401.
	HandleUnauthorized()

	CurrentUser() (models.User, bool)
	IsAuthenticated() bool
	IsDesktop() bool
	IsOnline() bool

	Features() models.FeatureFlags
	UnavailableFeatures() []models.UnavailableFeature

	// The sync operations below fail with ErrDesktopOnly outside the desktop
	// build, and the two directions fail with ErrOffline when offline,
	// before the sync service is called.

	SyncToCloud(ctx context.Context) (models.PushResult, error)
	SyncFromCloud(ctx context.Context) (models.PullResult, error)
	ClearLocalData(ctx context.Context) error
	ClearCloudAuth(ctx context.Context) error
	ResetSyncFlag()
	GetSyncStatus(ctx context.Context) (models.SyncStatus, error)
}

// LibraryService relays the flashcard screens to the session backend.
type LibraryService interface {
	// ListCardSets returns the sets matching filter whose name or description
	// contains query, case-insensitively. An empty query matches all.
	ListCardSets(ctx context.Context, filter models.CardSetFilter, query string) ([]models.CardSet, error)
	GetCardSet(ctx context.Context, id int64) (models.CardSet, error)
	CreateCardSet(ctx context.Context, in models.CardSetInput) (models.CardSet, error)
	UpdateCardSet(ctx context.Context, id int64, in models.CardSetInput) (models.CardSet, error)
	DeleteCardSet(ctx context.Context, id int64) error

	ListCards(ctx context.Context, cardSetID int64) ([]models.Card, error)
	CreateCard(ctx context.Context, cardSetID int64, in models.CardInput) (models.Card, error)
	UpdateCard(ctx context.Context, id int64, in models.CardInput) (models.Card, error)
	DeleteCard(ctx context.Context, id int64) error

	DueCards(ctx context.Context, cardSetID int64) ([]models.Card, error)
	StudyOverview(ctx context.Context, cardSetID int64) (models.StudyOverview, error)
	ReviewCard(ctx context.Context, review models.Review) error

	RequestAccess(ctx context.Context, cardSetID int64) (string, error)
	PendingAccessRequests(ctx context.Context, cardSetID int64) ([]models.AccessRequest, error)
	RespondAccessRequest(ctx context.Context, cardSetID, requestID int64, approve bool) (string, error)
	RevokeAccess(ctx context.Context, cardSetID int64) (string, error)
}
