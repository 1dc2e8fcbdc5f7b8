// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/logger"
)

type sqliteKeyValueStore struct {
	db        *DB
	namespace string
	now       func() time.Time
	logger    *logger.Logger
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] over the kv_items table,
// scoped to namespace. The schema must already be migrated.
func NewSQLiteKeyValueStore(db *DB, namespace string, log *logger.Logger) (KeyValueStore, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}

	return &sqliteKeyValueStore{
		db:        db,
		namespace: namespace,
		now:       time.Now,
		logger:    log,
	}, nil
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetQuery(s.namespace, key)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteKeyValueStore.Get").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertQuery(s.namespace, key, value, s.now().UTC())
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteKeyValueStore.Set").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Set").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteQuery(s.namespace, key)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteKeyValueStore.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Delete").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Close() error {
	return s.db.Close()
}
