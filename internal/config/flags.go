// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BaseURL is an absolute http(s) URL given on the command line.
// It implements the flag.Value interface.
type BaseURL struct {
	raw string
}

// ParseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-mode execution mode: desktop, web or auto
//	-log-level log level (debug, info, warn, error)
//	-log-dir directory of the client log file
//	-storage key/value storage driver: sqlite or bolt
//	-d SQLite database DSN
//	-bolt-path bbolt database file
//	-api base URL of the backend used by the interactive session
//	-local-api base URL of the local backend
//	-cloud-api base URL of the cloud backend
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-status-interval sync status refresh interval
//	-network-interval connectivity probe interval
//	-probe-address connectivity probe address in format [host]:[port]
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		mode, logLevel, logDir   string
		driver, dsn, boltPath    string
		apiURL, localAPI, cloud  BaseURL
		requestTimeout           time.Duration
		statusInterval, netCheck time.Duration
		probeAddress             NetAddress
		jsonConfigPath           string
	)

	fs := flag.NewFlagSet("intellicard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&mode, "mode", "", "Execution mode: desktop, web or auto")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logDir, "log-dir", "", "Directory of the log file")
	fs.StringVar(&driver, "storage", "", "Key/value storage driver: sqlite or bolt")
	fs.StringVar(&dsn, "d", "", "SQLite database DSN")
	fs.StringVar(&boltPath, "bolt-path", "", "bbolt database file")
	fs.Var(&apiURL, "api", "Base URL of the session backend")
	fs.Var(&localAPI, "local-api", "Base URL of the local backend")
	fs.Var(&cloud, "cloud-api", "Base URL of the cloud backend")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&statusInterval, "status-interval", 0, "Sync status refresh interval")
	fs.DurationVar(&netCheck, "network-interval", 0, "Connectivity probe interval")
	fs.Var(&probeAddress, "probe-address", "Connectivity probe address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Mode:     mode,
			LogLevel: logLevel,
			LogDir:   logDir,
		},
		Storage: Storage{
			Driver: driver,
			DB:     DB{DSN: dsn},
			Bolt:   Bolt{Path: boltPath},
		},
		Adapter: Adapter{
			APIURL:         apiURL.String(),
			LocalAPI:       localAPI.String(),
			CloudAPI:       cloud.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			StatusInterval:       statusInterval,
			NetworkCheckInterval: netCheck,
			NetworkProbeAddress:  probeAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// Host may be a DNS name or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	a.Host = host
	a.Port = port
	return nil
}

// String returns the URL without a trailing slash.
func (u *BaseURL) String() string {
	return u.raw
}

// Set validates that s is an absolute http or https URL.
func (u *BaseURL) Set(s string) error {
	if err := validateBaseURL(s); err != nil {
		return err
	}
	u.raw = strings.TrimRight(s, "/")
	return nil
}

func validateBaseURL(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", s, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", s)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", s)
	}
	return nil
}
