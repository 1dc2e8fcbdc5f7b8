// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/models"
)

// Persisted storage keys.
const (
	KeyUser         = "user"
	KeySessionToken = "token"
	KeyCloudToken   = "cloudToken"
	KeyLastSyncTime = "lastSyncTime"
)

type sessionStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewSessionStore returns a [SessionStore] over kv.
func NewSessionStore(kv KeyValueStore, log *logger.Logger) SessionStore {
	return &sessionStore{kv: kv, logger: log}
}

// getString reads a string value. Values written as JSON strings by other
// tools are unquoted; anything else is returned raw.
func (s *sessionStore) getString(ctx context.Context, key string) (string, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", err
	}

	var decoded string
	if json.Unmarshal([]byte(raw), &decoded) == nil {
		return decoded, nil
	}
	return raw, nil
}

func (s *sessionStore) User(ctx context.Context) (models.User, error) {
	raw, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, fmt.Errorf("%w: user: %w", ErrCorruptedValue, err)
	}
	if user.Username == "" {
		return models.User{}, fmt.Errorf("%w: user has no username", ErrCorruptedValue)
	}

	return user, nil
}

func (s *sessionStore) SetUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.kv.Set(ctx, KeyUser, string(data))
}

func (s *sessionStore) SessionToken(ctx context.Context) (string, error) {
	return s.getString(ctx, KeySessionToken)
}

func (s *sessionStore) SetSessionToken(ctx context.Context, token string) error {
	return s.kv.Set(ctx, KeySessionToken, token)
}

func (s *sessionStore) CloudToken(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyCloudToken)
}

func (s *sessionStore) SetCloudToken(ctx context.Context, token string) error {
	return s.kv.Set(ctx, KeyCloudToken, token)
}

func (s *sessionStore) DeleteCloudToken(ctx context.Context) error {
	return s.kv.Delete(ctx, KeyCloudToken)
}

func (s *sessionStore) LastSyncTime(ctx context.Context) (*time.Time, error) {
	raw, err := s.getString(ctx, KeyLastSyncTime)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "sessionStore.LastSyncTime").Str("value", raw).Msg("ignoring malformed last sync time")
		return nil, nil
	}
	return &at, nil
}

func (s *sessionStore) SetLastSyncTime(ctx context.Context, at time.Time) error {
	return s.kv.Set(ctx, KeyLastSyncTime, at.UTC().Format(time.RFC3339Nano))
}

func (s *sessionStore) ClearSession(ctx context.Context) error {
	return errors.Join(
		s.kv.Delete(ctx, KeySessionToken),
		s.kv.Delete(ctx, KeyUser),
	)
}
