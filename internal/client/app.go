// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/config"
	"github.com/MKhiriev/intellicard-client/internal/environment"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/service"
	"github.com/MKhiriev/intellicard-client/internal/store"
	"github.com/MKhiriev/intellicard-client/internal/tui"
	"github.com/MKhiriev/intellicard-client/internal/validators"
	"github.com/MKhiriev/intellicard-client/internal/workers"
	"github.com/MKhiriev/intellicard-client/models"
)

// Client is anything main can run to completion.
type Client interface {
	Run() error
}

// App is the interactive client process: storages, backend clients,
// services, background workers and the terminal UI.
type App struct {
	ctx     context.Context
	cfg     *config.ClientConfig
	runtime environment.Runtime

	storages *store.ClientStorages
	services *service.Services
	network  *environment.NetworkMonitor
	ui       *tui.TUI

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the client. The returned App owns the opened storages until
// Run returns.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	rt, err := environment.Detect(cfg.App.Mode, runtimeVersion(buildInfo))
	if err != nil {
		return nil, fmt.Errorf("detect runtime: %w", err)
	}
	log.Info().Str("mode", string(rt.Mode)).Str("platform", rt.Platform).Msg("runtime detected")

	storages, err := store.NewClientStorages(ctx, cfg.Storage, rt, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	app := &App{
		ctx:      ctx,
		cfg:      cfg,
		runtime:  rt,
		storages: storages,
		logger:   log,
	}
	if err = app.wire(buildInfo); err != nil {
		_ = storages.Close()
		return nil, err
	}

	return app, nil
}

func (a *App) wire(buildInfo models.AppBuildInfo) error {
	timeout := a.cfg.Adapter.RequestTimeout
	factory := adapter.NewFactory(
		adapter.BackendConfig{BaseURL: a.cfg.Adapter.LocalAPI, Timeout: timeout},
		adapter.BackendConfig{BaseURL: a.cfg.Adapter.CloudAPI, Timeout: timeout},
		a.logger,
	)

	local, err := factory.Local(nil)
	if err != nil {
		return fmt.Errorf("create local backend client: %w", err)
	}

	notifier := tui.NewNotifier(a.logger)
	bridge := tui.NewPasswordBridge()
	a.network = environment.NewNetworkMonitor(a.cfg.Workers.NetworkProbeAddress, a.cfg.Workers.NetworkCheckInterval, a.logger)

	syncSvc := service.NewSyncService(service.SyncDeps{
		Local:          local,
		CloudFactory:   factory,
		Session:        a.storages.Session,
		Notifier:       notifier,
		PasswordPrompt: bridge.Prompt,
	}, a.logger.Component("sync"))

	// the unauthorized hook needs the session service, which needs the api
	var sessionSvc service.SessionService
	sessionStore := a.storages.Session
	tokens := func() string {
		token, _ := sessionStore.SessionToken(context.Background())
		return token
	}
	api, err := adapter.NewHTTPBackendAdapter(
		adapter.BackendConfig{BaseURL: a.cfg.Adapter.APIURL, Timeout: timeout},
		tokens,
		a.logger.Component("api"),
		adapter.WithUnauthorizedHandler(func() {
			if sessionSvc == nil || !sessionSvc.IsAuthenticated() {
				return
			}
			sessionSvc.HandleUnauthorized()
			a.ui.SessionExpired()
		}),
	)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	validator := validators.NewFormValidator()
	sessionSvc = service.NewSessionService(service.SessionDeps{
		API:       api,
		Session:   sessionStore,
		Sync:      syncSvc,
		Runtime:   a.runtime,
		Network:   a.network,
		Notifier:  notifier,
		Validator: validator,
	}, a.logger.Component("session"))

	a.services = &service.Services{
		Sync:    syncSvc,
		Session: sessionSvc,
		Library: service.NewLibraryService(api, validator, notifier, a.logger.Component("library")),
	}
	a.ui = tui.New(a.ctx, a.services, notifier, bridge, buildInfo, a.runtime, a.logger)

	return nil
}

// Run restores the persisted session, starts the background workers and
// blocks in the terminal UI. Quitting the UI is not an error.
func (a *App) Run() error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("close storages")
		}
	}()

	startPage := tui.StartMenu
	user, err := a.services.Session.RestoreSession(a.ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("username", user.Username).Msg("session restored")
		startPage = tui.StartDashboard
	case errors.Is(err, service.ErrSessionNotFound):
		a.logger.Debug().Msg("no stored session")
	default:
		a.logger.Warn().Err(err).Msg("restore session")
	}

	jobs := a.workers()
	jobs.Start(a.ctx)
	defer jobs.Stop()

	unsubscribe := a.network.Subscribe(a.ui.NetworkSink())
	defer unsubscribe()

	err = a.ui.Run(startPage)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) workers() *workers.Workers {
	list := []workers.Worker{
		workers.NewNetworkRunner(a.network, a.logger),
	}
	if a.runtime.IsDesktop() {
		list = append(list, workers.NewStatusRefresher(a.services.Session, a.cfg.Workers.StatusInterval, a.ui.StatusSink(), a.logger))
	}
	return workers.New(list...)
}

// runtimeVersion hides the "N/A" placeholder of development builds from the
// runtime description.
func runtimeVersion(info models.AppBuildInfo) string {
	if !info.Released() {
		return ""
	}
	return info.Version
}
