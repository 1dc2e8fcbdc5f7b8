// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/intellicard-client/internal/logger"
)

// boltKeyValueStore keeps one bucket per namespace.
type boltKeyValueStore struct {
	db     *bbolt.DB
	bucket []byte
	logger *logger.Logger
}

// NewBoltKeyValueStore opens (or creates) the bbolt file at path and returns
// a [KeyValueStore] scoped to namespace.
func NewBoltKeyValueStore(path, namespace string, log *logger.Logger) (KeyValueStore, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create boltdb directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltKeyValueStore").Str("path", path).Msg("failed to open boltdb")
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &boltKeyValueStore{db: db, bucket: []byte(namespace), logger: log}
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize bucket %q: %w", namespace, err)
	}

	return s, nil
}

func (s *boltKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if bucket == nil {
			return ErrKeyNotFound
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return ErrKeyNotFound
		}

		// data is only valid inside the transaction
		value = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

func (s *boltKeyValueStore) Set(ctx context.Context, key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), []byte(value))
	})
	if err != nil {
		s.logger.Err(err).Str("func", "boltKeyValueStore.Set").Str("key", key).Msg("failed to save value")
		return fmt.Errorf("failed to save %q: %w", key, err)
	}

	return nil
}

func (s *boltKeyValueStore) Delete(ctx context.Context, key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(key))
	})
	if err != nil {
		s.logger.Err(err).Str("func", "boltKeyValueStore.Delete").Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}

	return nil
}

func (s *boltKeyValueStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
