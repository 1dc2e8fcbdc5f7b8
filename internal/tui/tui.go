// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the Bubble Tea front end of the flashcard client.
//
// The [RootModel] routes between pages and owns the toasts and the cloud
// password modal. Services talk back to the running program through the
// [Notifier] and [PasswordBridge], which are attached by [TUI.Run].
package tui

import (
	"context"

	"github.com/MKhiriev/intellicard-client/internal/environment"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/service"
	"github.com/MKhiriev/intellicard-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Start pages accepted by [TUI.Run].
const (
	StartMenu      = pageMenu
	StartDashboard = pageDashboard
)

type TUI struct {
	programRef

	ctx       context.Context
	services  *service.Services
	notifier  *Notifier
	bridge    *PasswordBridge
	buildInfo models.AppBuildInfo
	runtime   environment.Runtime
	logger    *logger.Logger
}

func New(ctx context.Context, services *service.Services, notifier *Notifier, bridge *PasswordBridge,
	buildInfo models.AppBuildInfo, rt environment.Runtime, log *logger.Logger) *TUI {
	return &TUI{
		ctx:       ctx,
		services:  services,
		notifier:  notifier,
		bridge:    bridge,
		buildInfo: buildInfo,
		runtime:   rt,
		logger:    log.Component("tui"),
	}
}

func (t *TUI) pages() map[string]tea.Model {
	session, library := t.services.Session, t.services.Library

	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(t.ctx, session),
		pageRegister:  NewRegisterModel(t.ctx, session),
		pageDashboard: NewDashboardModel(t.ctx, session, library),
		pageCardSet:   NewCardSetModel(t.ctx, library),
		pageAddCard:   NewAddCardModel(t.ctx, library),
		pageCreateSet: NewCreateSetModel(t.ctx, library),
		pageEditSet:   NewEditSetModel(t.ctx, library),
		pageEditCard:  NewEditCardModel(t.ctx, library),
		pageStudy:     NewStudyModel(t.ctx, library),
	}
	if session.IsDesktop() {
		pages[pageSync] = NewSyncModel(t.ctx, session)
	}
	return pages
}

// Run shows startPage and blocks until the program exits. It returns
// [ErrUserQuit] when the user closed the program.
func (t *TUI) Run(startPage string) error {
	pages := t.pages()
	if _, ok := pages[startPage]; !ok {
		startPage = pageMenu
	}

	root := NewRootModel(pages, startPage, t.buildInfo, t.runtime, t.services.Session.UnavailableFeatures)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(t.ctx))

	t.Attach(program)
	t.notifier.Attach(program)
	t.bridge.Attach(program)
	defer func() {
		t.Attach(nil)
		t.notifier.Attach(nil)
		t.bridge.Attach(nil)
	}()

	t.logger.Info().Str("start_page", startPage).Msg("starting TUI")
	final, err := program.Run()
	if err != nil {
		return err
	}

	if result, ok := final.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// StatusSink forwards sync status snapshots to the sync panel.
func (t *TUI) StatusSink() func(models.SyncStatus) {
	return func(status models.SyncStatus) {
		t.send(syncStatusMsg{status: status})
	}
}

// NetworkSink returns the online and offline callbacks for the network
// monitor.
func (t *TUI) NetworkSink() (onOnline, onOffline func()) {
	return func() { t.send(networkMsg{online: true}) },
		func() { t.send(networkMsg{online: false}) }
}

// SessionExpired returns the user to the menu. It is called from the
// backend's unauthorized hook, never from inside Update.
func (t *TUI) SessionExpired() {
	t.send(sessionExpiredMsg{})
}
