// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"

	"github.com/MKhiriev/intellicard-client/internal/logger"
)

// ErrCloudNotConfigured is returned by [Factory.Cloud] when no cloud API URL
// was configured.
var ErrCloudNotConfigured = errors.New("cloud backend is not configured")

// Factory builds backend clients for the two known backends.
type Factory struct {
	LocalConfig BackendConfig
	CloudConfig BackendConfig

	logger *logger.Logger
}

// NewFactory returns a Factory for the given local and cloud backends.
func NewFactory(local, cloud BackendConfig, log *logger.Logger) *Factory {
	return &Factory{LocalConfig: local, CloudConfig: cloud, logger: log}
}

// Local returns a client for the local backend. tokens may be nil: the sync
// service talks to the local backend without credentials.
func (f *Factory) Local(tokens TokenSource, opts ...Option) (BackendAdapter, error) {
	return NewHTTPBackendAdapter(f.LocalConfig, tokens, f.logger.Component("local-api"), opts...)
}

// Cloud returns a client for the cloud backend that sends token on every
// request. An empty token yields an unauthenticated client, used for the
// cloud login call itself.
func (f *Factory) Cloud(token string) (BackendAdapter, error) {
	if f.CloudConfig.BaseURL == "" {
		return nil, ErrCloudNotConfigured
	}
	return NewHTTPBackendAdapter(f.CloudConfig, StaticToken(token), f.logger.Component("cloud-api"))
}
