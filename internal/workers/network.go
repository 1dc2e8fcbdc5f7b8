// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/intellicard-client/internal/logger"
)

// NetworkRunner drives a connectivity monitor as a worker.
type NetworkRunner struct {
	monitor ConnectivityMonitor
	logger  *logger.Logger
}

func NewNetworkRunner(monitor ConnectivityMonitor, log *logger.Logger) *NetworkRunner {
	return &NetworkRunner{monitor: monitor, logger: log.Component("network-runner")}
}

func (n *NetworkRunner) Run(ctx context.Context) {
	if err := n.monitor.Run(ctx); err != nil {
		n.logger.Warn().Err(err).Msg("network monitor stopped")
	}
}
