// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/intellicard-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is a namespaced string key/value store. Every implementation
// is bound to one namespace at construction time.
type KeyValueStore interface {
	// Get returns the value of key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set creates or replaces the value of key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying database.
	Close() error
}

// SessionStore is the typed view of the persisted client state: the signed
// in user, the session token of the interactive backend, the cloud token and
// the last sync time.
type SessionStore interface {
	User(ctx context.Context) (models.User, error)
	SetUser(ctx context.Context, user models.User) error

	SessionToken(ctx context.Context) (string, error)
	SetSessionToken(ctx context.Context, token string) error

	CloudToken(ctx context.Context) (string, error)
	SetCloudToken(ctx context.Context, token string) error
	DeleteCloudToken(ctx context.Context) error

	// LastSyncTime returns nil when no sync has completed or the stored
	// value cannot be parsed.
	LastSyncTime(ctx context.Context) (*time.Time, error)
	SetLastSyncTime(ctx context.Context, at time.Time) error

	// ClearSession removes the session token and the user. The cloud token
	// and the last sync time are kept.
	ClearSession(ctx context.Context) error
}
