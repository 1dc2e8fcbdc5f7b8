// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Mode is the requested execution mode (desktop, web, auto).
	Mode string
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogDir is the directory of the client log file.
	LogDir string
}

// ClientAdapter holds the backend endpoints used by the client.
type ClientAdapter struct {
	// APIURL is the backend of the interactive session.
	APIURL string
	// LocalAPI is the local backend, the source of pushes and the target of pulls.
	LocalAPI string
	// CloudAPI is the cloud backend.
	CloudAPI string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups key/value storage settings.
type ClientStorage struct {
	// Driver is "sqlite", "bolt" or empty (select by mode).
	Driver string
	// DSN is the SQLite database path.
	DSN string
	// BoltPath is the bbolt database path.
	BoltPath string
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	StatusInterval       time.Duration
	NetworkCheckInterval time.Duration
	NetworkProbeAddress  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// command-line args (without the program name), the environment and the
// optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps a merged [StructuredConfig] onto the client view,
// fills derived values and validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dataDir := defaultDataDir()

	clientCfg := &ClientConfig{
		App: ClientApp{
			Mode:     cfg.App.Mode,
			LogLevel: cfg.App.LogLevel,
			LogDir:   cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			APIURL:         firstNonEmpty(cfg.Adapter.APIURL, cfg.Adapter.LocalAPI),
			LocalAPI:       cfg.Adapter.LocalAPI,
			CloudAPI:       cfg.Adapter.CloudAPI,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver:   cfg.Storage.Driver,
			DSN:      firstNonEmpty(cfg.Storage.DB.DSN, filepath.Join(dataDir, DefaultDBFile)),
			BoltPath: firstNonEmpty(cfg.Storage.Bolt.Path, filepath.Join(dataDir, DefaultBoltFile)),
		},
		Workers: ClientWorkers{
			StatusInterval:       cfg.Workers.StatusInterval,
			NetworkCheckInterval: cfg.Workers.NetworkCheckInterval,
			NetworkProbeAddress:  firstNonEmpty(cfg.Workers.NetworkProbeAddress, probeAddressOf(cfg.Adapter.CloudAPI)),
		},
	}

	return clientCfg, clientCfg.validate()
}

// ResolveDriver returns the configured storage driver, or the mode default
// when none is set: SQLite for desktop, bbolt for web.
func (s ClientStorage) ResolveDriver(desktop bool) string {
	if s.Driver != "" {
		return s.Driver
	}
	if desktop {
		return DriverSQLite
	}
	return DriverBolt
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "intellicard")
}

// probeAddressOf derives host:port from a base URL, using the scheme's
// default port when none is given.
func probeAddressOf(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(u.Hostname(), port)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
