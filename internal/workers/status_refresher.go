// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/models"
)

// DefaultStatusInterval is the refresh period of the sync status panel.
const DefaultStatusInterval = 30 * time.Second

// StatusRefresher polls the sync status and hands every snapshot to a sink.
type StatusRefresher struct {
	source   StatusSource
	interval time.Duration
	sink     func(models.SyncStatus)
	logger   *logger.Logger
}

// NewStatusRefresher creates a refresher. A non-positive interval means
// [DefaultStatusInterval].
func NewStatusRefresher(source StatusSource, interval time.Duration, sink func(models.SyncStatus), log *logger.Logger) *StatusRefresher {
	if interval <= 0 {
		interval = DefaultStatusInterval
	}
	return &StatusRefresher{
		source:   source,
		interval: interval,
		sink:     sink,
		logger:   log.Component("status-refresher"),
	}
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
func (r *StatusRefresher) Run(ctx context.Context) {
	r.Refresh(ctx)

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Refresh(ctx)
		}
	}
}

// Refresh fetches one snapshot. Failed fetches are logged and skipped so the
// sink keeps the last good snapshot.
func (r *StatusRefresher) Refresh(ctx context.Context) {
	status, err := r.source.GetSyncStatus(ctx)
	if err != nil {
		r.logger.Debug().Err(err).Msg("sync status unavailable")
		return
	}
	if r.sink != nil {
		r.sink(status)
	}
}
