// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Known execution modes and storage drivers.
const (
	ModeDesktop = "desktop"
	ModeWeb     = "web"
	ModeAuto    = "auto"

	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// validate checks the merged [StructuredConfig]. Empty fields are allowed
// here: defaults are a separate layer and tests build partial configs.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Mode {
	case "", ModeDesktop, ModeWeb, ModeAuto:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, cfg.App.Mode)
	}

	switch cfg.Storage.Driver {
	case "", DriverSQLite, DriverBolt:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	for _, u := range []string{cfg.Adapter.APIURL, cfg.Adapter.LocalAPI, cfg.Adapter.CloudAPI} {
		if u == "" {
			continue
		}
		if err := validateBaseURL(u); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.Contains(cfg.Storage.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.APIURL == "" || cfg.Adapter.LocalAPI == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Mode == ModeDesktop && cfg.Adapter.CloudAPI == "" {
		return fmt.Errorf("%w: cloud API is required in desktop mode", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.StatusInterval <= 0 || cfg.Workers.NetworkCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
