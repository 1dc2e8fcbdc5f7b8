// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/intellicard-client/internal/config"
	"github.com/MKhiriev/intellicard-client/internal/environment"
	"github.com/MKhiriev/intellicard-client/internal/logger"
)

// ClientStorages groups the client-side persistence into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// KV is the raw namespaced store.
	KV KeyValueStore
	// Session is the typed view over KV.
	Session SessionStore
	// Driver is the backend actually selected.
	Driver string
}

// NewClientStorages opens the key/value backend selected by cfg for the
// given runtime:
//   - sqlite: opens the database file, runs migrations, binds kv_items rows
//     to the runtime namespace;
//   - bolt: opens the bbolt file and binds a bucket named after the runtime
//     namespace.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, rt environment.Runtime, log *logger.Logger) (*ClientStorages, error) {
	driver := cfg.ResolveDriver(rt.IsDesktop())
	log.Info().Str("driver", driver).Str("namespace", rt.Namespace()).Msg("creating client storages...")

	var (
		kv  KeyValueStore
		err error
	)

	switch driver {
	case config.DriverSQLite:
		kv, err = openSQLite(ctx, cfg.DSN, rt.Namespace(), log)
	case config.DriverBolt:
		kv, err = NewBoltKeyValueStore(cfg.BoltPath, rt.Namespace(), log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		KV:      kv,
		Session: NewSessionStore(kv, log),
		Driver:  driver,
	}, nil
}

func openSQLite(ctx context.Context, dsn, namespace string, log *logger.Logger) (KeyValueStore, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteKeyValueStore(db, namespace, log)
}

// Close releases the underlying database.
func (s *ClientStorages) Close() error {
	return s.KV.Close()
}
