// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied when no source provides a setting.
const (
	DefaultLocalAPI             = "http://localhost:8080/api/v1"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultStatusInterval       = 30 * time.Second
	DefaultNetworkCheckInterval = 10 * time.Second
	DefaultMode                 = "auto"
	DefaultDBFile               = "intellicard.db"
	DefaultBoltFile             = "intellicard.bolt"
)

// StructuredConfig is the top-level configuration container for the
// intellicard client. It is populated by merging values from command-line
// flags, environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the execution mode and logging settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key/value backend that keeps the
	// session, the cloud token and the last sync time.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the base URLs of the REST backends and the request
	// timeout applied to every outbound call.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the intervals of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Mode is "desktop", "web" or "auto".
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogDir is the directory of the client log file. Empty means the
	// directory of the executable.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Storage groups the key/value backend settings.
type Storage struct {
	// Driver is "sqlite" or "bolt". Empty selects by mode.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// Bolt holds the bbolt settings.
	Bolt Bolt `envPrefix:"BOLT_"`
}

// DB holds SQLite settings.
type DB struct {
	// DSN is the SQLite database file path or DSN.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Bolt holds bbolt settings.
type Bolt struct {
	// Path is the bbolt database file.
	// Env: STORAGE_BOLT_PATH
	Path string `env:"PATH"`
}

// Adapter holds outbound REST settings.
type Adapter struct {
	// APIURL is the backend the interactive session talks to. Defaults to
	// LocalAPI.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// LocalAPI is the base URL of the local backend.
	// Env: ADAPTER_LOCAL_API
	LocalAPI string `env:"LOCAL_API"`

	// CloudAPI is the base URL of the cloud backend.
	// Env: ADAPTER_CLOUD_API
	CloudAPI string `env:"CLOUD_API"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// StatusInterval is how often the sync status is refreshed.
	// Env: WORKERS_STATUS_INTERVAL
	StatusInterval time.Duration `env:"STATUS_INTERVAL"`

	// NetworkCheckInterval is how often connectivity is probed.
	// Env: WORKERS_NETWORK_CHECK_INTERVAL
	NetworkCheckInterval time.Duration `env:"NETWORK_CHECK_INTERVAL"`

	// NetworkProbeAddress is the host:port dialled to detect connectivity.
	// Empty means the host of CloudAPI.
	// Env: WORKERS_NETWORK_PROBE_ADDRESS
	NetworkProbeAddress string `env:"NETWORK_PROBE_ADDRESS"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:     DefaultMode,
			LogLevel: "debug",
		},
		Adapter: Adapter{
			LocalAPI:       DefaultLocalAPI,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			StatusInterval:       DefaultStatusInterval,
			NetworkCheckInterval: DefaultNetworkCheckInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Sources are consulted in the following priority order (the first source
// providing a non-zero value wins):
//  1. Command-line flags parsed from args
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// GetStructuredConfigWith is [GetStructuredConfig] for callers that parse
// their own command line (syncctl): overrides takes the place of the flags
// layer.
func GetStructuredConfigWith(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		with(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
