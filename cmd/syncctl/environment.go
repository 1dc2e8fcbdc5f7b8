// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/config"
	env "github.com/MKhiriev/intellicard-client/internal/environment"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/service"
	"github.com/MKhiriev/intellicard-client/internal/store"
	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/internal/validators"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/urfave/cli/v2"
)

var timeNow = time.Now

// environment holds the services of one syncctl invocation.
type environment struct {
	storages *store.ClientStorages
	network  *env.NetworkMonitor
	session  service.SessionService
	logger   *logger.Logger
}

func newEnvironment(ctx context.Context, args []string) (*environment, error) {
	cfg, err := config.GetClientConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("syncctl", cfg.App.LogDir, cfg.App.LogLevel)

	rt, err := env.Detect(config.ModeDesktop, buildVersion)
	if err != nil {
		return nil, err
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, rt, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	timeout := cfg.Adapter.RequestTimeout
	factory := adapter.NewFactory(
		adapter.BackendConfig{BaseURL: cfg.Adapter.LocalAPI, Timeout: timeout},
		adapter.BackendConfig{BaseURL: cfg.Adapter.CloudAPI, Timeout: timeout},
		log,
	)
	local, err := factory.Local(nil)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create local backend client: %w", err)
	}

	notifier := newStderrNotifier(os.Stderr)
	syncSvc := service.NewSyncService(service.SyncDeps{
		Local:          local,
		CloudFactory:   factory,
		Session:        storages.Session,
		Notifier:       notifier,
		PasswordPrompt: newTerminalPrompt(os.Stdin, os.Stderr),
	}, log.Component("sync"))

	network := env.NewNetworkMonitor(cfg.Workers.NetworkProbeAddress, cfg.Workers.NetworkCheckInterval, log)

	return &environment{
		storages: storages,
		network:  network,
		session: service.NewSessionService(service.SessionDeps{
			API:       local,
			Session:   storages.Session,
			Sync:      syncSvc,
			Runtime:   rt,
			Network:   network,
			Notifier:  notifier,
			Validator: validators.NewFormValidator(),
		}, log.Component("session")),
		logger: log,
	}, nil
}

func (e *environment) Close() error {
	return e.storages.Close()
}

func (e *environment) status(ctx context.Context, w io.Writer, asJSON bool) error {
	status, err := e.session.GetSyncStatus(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	account := "not connected"
	if status.HasCloudToken {
		account = "connected"
	}
	fmt.Fprintf(w, "Cloud account: %s\n", account)
	fmt.Fprintf(w, "Last sync:     %s\n", utils.FormatLastSync(status.LastSync, timeNow()))
	fmt.Fprintf(w, "Card sets:     %d\n", status.TotalCardSets)
	fmt.Fprintf(w, "Cards:         %d\n", status.TotalCards)
	return nil
}

func (e *environment) push(ctx context.Context, w io.Writer) error {
	e.network.Check(ctx)

	res, err := e.session.SyncToCloud(ctx)
	if err != nil {
		return e.syncError(err)
	}

	fmt.Fprintln(w, pushSummary(res))
	if !res.Success {
		return cli.Exit("", 1)
	}
	return nil
}

func (e *environment) pull(ctx context.Context, w io.Writer) error {
	e.network.Check(ctx)

	res, err := e.session.SyncFromCloud(ctx)
	if err != nil {
		return e.syncError(err)
	}

	fmt.Fprintf(w, "Card sets: %d, cards: %d, failed: %d\n", res.CardSetsUpdated, res.CardsUpdated, res.ErrorCount)
	if !res.Success {
		return cli.Exit("", 1)
	}
	return nil
}

func (e *environment) clearLocal(ctx context.Context, w io.Writer) error {
	if err := e.session.ClearLocalData(ctx); err != nil {
		return err
	}
	fmt.Fprintln(w, "Local data cleared")
	return nil
}

func (e *environment) disconnect(ctx context.Context, w io.Writer) error {
	if err := e.session.ClearCloudAuth(ctx); err != nil {
		return err
	}
	fmt.Fprintln(w, "Cloud token removed")
	return nil
}

// syncError keeps the user-facing text of a failed run.
func (e *environment) syncError(err error) error {
	e.logger.Err(err).Msg("sync failed")
	return cli.Exit(service.UserMessage(err), 1)
}

func pushSummary(res models.PushResult) string {
	return fmt.Sprintf("Card sets: %d, cards copied: %d, failed: %d", res.CardSets, res.SuccessCount, res.ErrorCount)
}
