// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructured() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Adapter.CloudAPI = "https://cloud.example.com/api/v1"
	return cfg
}

func TestNewClientConfig_DerivedValues(t *testing.T) {
	cfg, err := NewClientConfig(validStructured())
	require.NoError(t, err)

	assert.Equal(t, DefaultLocalAPI, cfg.Adapter.APIURL, "session API defaults to the local backend")
	assert.Equal(t, "cloud.example.com:443", cfg.Workers.NetworkProbeAddress)
	assert.NotEmpty(t, cfg.Storage.DSN)
	assert.NotEmpty(t, cfg.Storage.BoltPath)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestNewClientConfig_DesktopRequiresCloud(t *testing.T) {
	s := defaultConfig()
	s.App.Mode = ModeDesktop

	_, err := NewClientConfig(s)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestNewClientConfig_WebWithoutCloudIsValid(t *testing.T) {
	s := defaultConfig()
	s.App.Mode = ModeWeb

	_, err := NewClientConfig(s)
	assert.NoError(t, err)
}

func TestNewClientConfig_InMemoryDSNRejected(t *testing.T) {
	s := validStructured()
	s.Storage.DB.DSN = ":memory:"

	_, err := NewClientConfig(s)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestNewClientConfig_ZeroIntervalRejected(t *testing.T) {
	s := validStructured()
	s.Workers.StatusInterval = 0

	_, err := NewClientConfig(s)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestResolveDriver(t *testing.T) {
	assert.Equal(t, DriverSQLite, ClientStorage{}.ResolveDriver(true))
	assert.Equal(t, DriverBolt, ClientStorage{}.ResolveDriver(false))
	assert.Equal(t, DriverBolt, ClientStorage{Driver: DriverBolt}.ResolveDriver(true))
}

func TestProbeAddressOf(t *testing.T) {
	assert.Equal(t, "localhost:8080", probeAddressOf("http://localhost:8080/api/v1"))
	assert.Equal(t, "cloud.example.com:80", probeAddressOf("http://cloud.example.com"))
	assert.Empty(t, probeAddressOf(""))
}
