// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/app"
	"github.com/MKhiriev/intellicard-client/internal/service"
	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type syncAction int

const (
	actionNone syncAction = iota
	actionPush
	actionPull
	actionClearLocal
	actionUnlink
)

type syncActionDoneMsg struct {
	action syncAction
	err    error
}

// SyncModel is the desktop sync panel. Status arrives both from its own
// refresh commands and from the background refresher.
type SyncModel struct {
	ctx     context.Context
	session service.SessionService
	now     func() time.Time

	status  models.SyncStatus
	loaded  bool
	online  bool
	spinner spinner.Model

	running syncAction
	// stuck is set when the service reports a run this panel did not start.
	stuck   bool
	confirm *confirmModel
	result  string
	errMsg  string
}

func NewSyncModel(ctx context.Context, session service.SessionService) *SyncModel {
	return &SyncModel{
		ctx:     ctx,
		session: session,
		now:     time.Now,
		online:  session.IsOnline(),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(loadingStyle)),
	}
}

func (m *SyncModel) Init() tea.Cmd {
	m.online = m.session.IsOnline()
	m.confirm = nil
	if m.running != actionNone {
		return tea.Batch(m.cmdStatus(), m.spinner.Tick)
	}
	return m.cmdStatus()
}

func (m *SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncStatusMsg:
		m.status = msg.status
		m.loaded = true
		return m, nil

	case networkMsg:
		m.online = msg.online
		return m, nil

	case syncDoneMsg:
		m.running = actionNone
		m.finish(msg.err)
		if msg.err == nil {
			m.result = summarize(msg)
		}
		return m, m.cmdStatus()

	case syncActionDoneMsg:
		m.running = actionNone
		m.finish(msg.err)
		if msg.err == nil {
			switch msg.action {
			case actionClearLocal:
				m.result = app.MsgLocalDataCleared
			case actionUnlink:
				m.result = "Cloud account disconnected"
			}
		}
		return m, m.cmdStatus()

	case spinner.TickMsg:
		if m.running == actionNone {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.confirm != nil {
			confirmed := m.confirm.confirmed(msg)
			m.confirm = nil
			if !confirmed {
				return m, nil
			}
			return m, m.start(actionClearLocal)
		}
		return m, m.updateKeys(msg)
	}

	return m, nil
}

// finish records the outcome of an action. Every run releases its own lock,
// so ErrSyncInProgress here means an abandoned run still holds it and the
// user is offered a manual reset.
func (m *SyncModel) finish(err error) {
	m.stuck = errors.Is(err, service.ErrSyncInProgress)
	if err == nil {
		m.errMsg = ""
		return
	}
	m.result = ""
	m.errMsg = humanizeError(err)
}

func (m *SyncModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.esc) {
		return navigate(pageDashboard)
	}
	if m.running != actionNone {
		return nil
	}

	switch {
	case key.Matches(msg, keys.unlock) && m.stuck:
		m.session.ResetSyncFlag()
		m.stuck = false
		m.errMsg = ""
		m.result = "Sync lock released"
		return nil
	case key.Matches(msg, keys.push):
		return m.start(actionPush)
	case key.Matches(msg, keys.pull):
		return m.start(actionPull)
	case key.Matches(msg, keys.clear):
		m.confirm = newConfirm("Delete every local card set and card?")
	case key.Matches(msg, keys.unlink):
		return m.start(actionUnlink)
	case key.Matches(msg, keys.refresh):
		return m.cmdStatus()
	}
	return nil
}

func (m *SyncModel) start(action syncAction) tea.Cmd {
	if (action == actionPush || action == actionPull) && !m.online {
		m.result = ""
		m.errMsg = app.MsgInternetRequired
		return nil
	}

	m.running = action
	m.result = ""
	m.errMsg = ""
	ctx, session := m.ctx, m.session

	var run tea.Cmd
	switch action {
	case actionPush:
		run = func() tea.Msg {
			res, err := session.SyncToCloud(ctx)
			return syncDoneMsg{push: &res, err: err}
		}
	case actionPull:
		run = func() tea.Msg {
			res, err := session.SyncFromCloud(ctx)
			return syncDoneMsg{pull: &res, err: err}
		}
	case actionClearLocal:
		run = func() tea.Msg {
			return syncActionDoneMsg{action: actionClearLocal, err: session.ClearLocalData(ctx)}
		}
	case actionUnlink:
		run = func() tea.Msg {
			return syncActionDoneMsg{action: actionUnlink, err: session.ClearCloudAuth(ctx)}
		}
	}

	return tea.Batch(run, m.spinner.Tick)
}

func (m *SyncModel) cmdStatus() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		status, err := session.GetSyncStatus(ctx)
		if err != nil {
			return nil
		}
		return syncStatusMsg{status: status}
	}
}

func summarize(msg syncDoneMsg) string {
	switch {
	case msg.push != nil:
		if msg.push.ErrorCount > 0 {
			return fmt.Sprintf("Pushed %d of %d card sets with %d cards, %d failed",
				msg.push.CardSets-msg.push.ErrorCount, msg.push.CardSets, msg.push.SuccessCount, msg.push.ErrorCount)
		}
		return fmt.Sprintf("Pushed %d card sets with %d cards", msg.push.CardSets, msg.push.SuccessCount)
	case msg.pull != nil:
		if msg.pull.ErrorCount > 0 {
			return fmt.Sprintf("Pulled %d card sets with %d cards, %d failed", msg.pull.CardSetsUpdated, msg.pull.CardsUpdated, msg.pull.ErrorCount)
		}
		return fmt.Sprintf("Pulled %d card sets with %d cards", msg.pull.CardSetsUpdated, msg.pull.CardsUpdated)
	default:
		return ""
	}
}

func (m *SyncModel) View() string {
	var b strings.Builder

	connection := successStyle.Render("Online")
	if !m.online {
		connection = errorStyle.Render("Offline")
	}
	b.WriteString("Connection     │ ")
	b.WriteString(connection)
	b.WriteString("\n")

	account := "Not connected"
	if m.status.HasCloudToken {
		account = "Connected"
	}
	b.WriteString("Cloud account  │ ")
	b.WriteString(account)
	b.WriteString("\n")

	if m.loaded {
		b.WriteString("Last sync      │ ")
		b.WriteString(utils.FormatLastSync(m.status.LastSync, m.now()))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Card sets      │ %d\n", m.status.TotalCardSets))
		b.WriteString(fmt.Sprintf("Cards          │ %d\n", m.status.TotalCards))
	} else {
		b.WriteString("Loading status...\n")
	}

	if !m.online {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(app.MsgInternetRequired))
		b.WriteString("\n")
	}

	if m.running != actionNone {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Working...\n")
	}
	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}
	if m.result != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.result))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	help := "p: push to cloud │ f: pull from cloud │ C: clear local data │ x: disconnect cloud │ r: refresh │ esc: back"
	if m.stuck {
		help = "R: release sync lock │ " + help
	}
	return renderPage("SYNC", strings.TrimRight(b.String(), "\n"), help)
}
