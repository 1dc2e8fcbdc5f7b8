// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the REST clients used to talk to an Intellicard
// backend.
//
// The primary abstraction is [BackendAdapter]. One instance is bound to one
// backend (the local backend started by the desktop shell, or the cloud
// backend) and to one source of bearer tokens. [Factory] builds the clients
// the sync service needs: an unauthenticated local client and a cloud client
// bound to a specific cloud token.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/intellicard-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the REST surface of an Intellicard backend. Paths are
// relative to the backend's API base URL.
type BackendAdapter interface {
	// Login sends POST /auth/login and returns the bearer token issued for
	// the credentials.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Register sends POST /auth/register.
	Register(ctx context.Context, req models.RegisterRequest) error

	// CheckUsername sends GET /auth/check-username and reports whether the
	// username is still available.
	CheckUsername(ctx context.Context, username string) (bool, error)

	// ListCardSets returns every card set visible to the caller (GET /cardsets).
	ListCardSets(ctx context.Context) ([]models.CardSet, error)

	// GetCardSet returns one card set (GET /cardsets/{id}).
	GetCardSet(ctx context.Context, id int64) (models.CardSet, error)

	// CreateCardSet creates a card set (POST /cardsets) and returns the record
	// with the id assigned by the backend.
	CreateCardSet(ctx context.Context, in models.CardSetInput) (models.CardSet, error)

	// UpdateCardSet replaces the writable fields of a card set
	// (PUT /cardsets/{id}).
	UpdateCardSet(ctx context.Context, id int64, in models.CardSetInput) (models.CardSet, error)

	// DeleteCardSet removes a card set and its cards (DELETE /cardsets/{id}).
	DeleteCardSet(ctx context.Context, id int64) error

	// ListCards returns the cards of a card set (GET /cards/cardset/{id}).
	ListCards(ctx context.Context, cardSetID int64) ([]models.Card, error)

	// CreateCard adds a card to a card set (POST /cards/cardset/{id}).
	CreateCard(ctx context.Context, cardSetID int64, in models.CardInput) (models.Card, error)

	// UpdateCard replaces the term and definition of a card (PUT /cards/{id}).
	UpdateCard(ctx context.Context, id int64, in models.CardInput) (models.Card, error)

	// DeleteCard removes a card (DELETE /cards/{id}).
	DeleteCard(ctx context.Context, id int64) error

	// DueCards returns the cards of a set that are due for review
	// (GET /study/cardset/{id}/due).
	DueCards(ctx context.Context, cardSetID int64) ([]models.Card, error)

	// StudyOverview returns the study counters of a set
	// (GET /study/cardset/{id}/overview).
	StudyOverview(ctx context.Context, cardSetID int64) (models.StudyOverview, error)

	// ReviewCard records the outcome of one review
	// (POST /study/card/{id}/review).
	ReviewCard(ctx context.Context, review models.Review) error

	// RequestAccess asks the owner of a private set for access
	// (POST /cardsets/{id}/access-requests).
	RequestAccess(ctx context.Context, cardSetID int64) (models.MessageResponse, error)

	// PendingAccessRequests lists the pending requests for a set owned by the
	// caller (GET /cardsets/{id}/access-requests).
	PendingAccessRequests(ctx context.Context, cardSetID int64) ([]models.AccessRequest, error)

	// RespondAccessRequest approves or rejects a pending request
	// (PUT /cardsets/{id}/access-requests/{requestId}).
	RespondAccessRequest(ctx context.Context, cardSetID, requestID int64, approve bool) (models.MessageResponse, error)

	// RevokeAccess drops the caller's own access to a shared set
	// (DELETE /cardsets/{id}/access-requests/revoke).
	RevokeAccess(ctx context.Context, cardSetID int64) (models.MessageResponse, error)
}
