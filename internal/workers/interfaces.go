// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background loops: the periodic sync
// status refresh and the network connectivity monitor.
//
// Each loop implements [Worker]; a [Workers] aggregate starts them together
// and stops them together.
package workers

import (
	"context"

	"github.com/MKhiriev/intellicard-client/models"
)

// Worker is a background loop. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// StatusSource produces sync status snapshots. The session service
// satisfies it.
type StatusSource interface {
	GetSyncStatus(ctx context.Context) (models.SyncStatus, error)
}

// ConnectivityMonitor is the loop driven by [NetworkRunner].
type ConnectivityMonitor interface {
	Run(ctx context.Context) error
}
