// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/intellicard-client/internal/logger"
)

// создаём тестовое BoltDB хранилище во временной директории
func newTestBoltKV(t *testing.T, path, namespace string) KeyValueStore {
	t.Helper()
	kv, err := NewBoltKeyValueStore(path, namespace, logger.Nop())
	require.NoError(t, err)
	return kv
}

func TestBolt_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	kv := newTestBoltKV(t, filepath.Join(t.TempDir(), "nested", "kv.bolt"), "web")
	defer kv.Close()

	_, err := kv.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "token", "abc"))
	got, err := kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	require.NoError(t, kv.Set(ctx, "token", "def"))
	got, err = kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "def", got)

	require.NoError(t, kv.Delete(ctx, "token"))
	require.NoError(t, kv.Delete(ctx, "token"), "deleting a missing key is not an error")
	_, err = kv.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBolt_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shared.bolt")

	web := newTestBoltKV(t, path, "web")
	require.NoError(t, web.Set(ctx, "cloudToken", "web-token"))
	require.NoError(t, web.Close())

	desktop := newTestBoltKV(t, path, "desktop")
	defer desktop.Close()

	_, err := desktop.Get(ctx, "cloudToken")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBolt_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.bolt")

	first := newTestBoltKV(t, path, "desktop")
	require.NoError(t, first.Set(ctx, "lastSyncTime", "2026-03-01T00:00:00Z"))
	require.NoError(t, first.Close())

	second := newTestBoltKV(t, path, "desktop")
	defer second.Close()
	got, err := second.Get(ctx, "lastSyncTime")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T00:00:00Z", got)
}

func TestBolt_EmptyNamespace(t *testing.T) {
	_, err := NewBoltKeyValueStore(filepath.Join(t.TempDir(), "x.bolt"), "", logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyNamespace)
}
