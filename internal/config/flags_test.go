// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "dns name", input: "cloud.example.com:443", expected: NetAddress{Host: "cloud.example.com", Port: 443}},
		{name: "ip address", input: "127.0.0.1:8080", expected: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestBaseURL_Set(t *testing.T) {
	var u BaseURL
	require.NoError(t, u.Set("https://cloud.example.com/api/v1/"))
	assert.Equal(t, "https://cloud.example.com/api/v1", u.String())

	assert.Error(t, u.Set("cloud.example.com"))
	assert.Error(t, u.Set("ftp://cloud.example.com"))
	assert.Error(t, u.Set("http://"))
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-mode", "desktop",
		"-log-level", "warn",
		"-log-dir", "/tmp/logs",
		"-storage", "sqlite",
		"-d", "/tmp/ic.db",
		"-bolt-path", "/tmp/ic.bolt",
		"-api", "http://localhost:8080/api/v1",
		"-local-api", "http://127.0.0.1:8080/api/v1",
		"-cloud-api", "https://cloud.example.com/api/v1",
		"-request-timeout", "45s",
		"-status-interval", "10s",
		"-network-interval", "3s",
		"-probe-address", "cloud.example.com:443",
		"-config", "/etc/intellicard.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "desktop", cfg.App.Mode)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/logs", cfg.App.LogDir)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/ic.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/ic.bolt", cfg.Storage.Bolt.Path)
	assert.Equal(t, "http://localhost:8080/api/v1", cfg.Adapter.APIURL)
	assert.Equal(t, "http://127.0.0.1:8080/api/v1", cfg.Adapter.LocalAPI)
	assert.Equal(t, "https://cloud.example.com/api/v1", cfg.Adapter.CloudAPI)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Workers.StatusInterval)
	assert.Equal(t, 3*time.Second, cfg.Workers.NetworkCheckInterval)
	assert.Equal(t, "cloud.example.com:443", cfg.Workers.NetworkProbeAddress)
	assert.Equal(t, "/etc/intellicard.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidURL(t *testing.T) {
	_, err := ParseFlags([]string{"-cloud-api", "not a url"})
	assert.Error(t, err)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
