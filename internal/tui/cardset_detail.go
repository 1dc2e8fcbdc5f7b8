// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/intellicard-client/internal/app"
	"github.com/MKhiriev/intellicard-client/internal/service"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type accessRequestsLoadedMsg struct {
	requests []models.AccessRequest
	err      error
}

type accessChangedMsg struct {
	message string
	err     error
}

// CardSetModel shows the cards of one card set and its access requests.
type CardSetModel struct {
	ctx     context.Context
	library service.LibraryService
	copy    func(string) error

	set     models.CardSet
	cards   []models.Card
	idx     int
	loading bool

	showRequests bool
	requests     []models.AccessRequest
	reqIdx       int

	confirm *confirmModel
	status  string
	errMsg  string
}

func NewCardSetModel(ctx context.Context, library service.LibraryService) *CardSetModel {
	return &CardSetModel{
		ctx:     ctx,
		library: library,
		copy:    clipboard.WriteAll,
	}
}

func (m *CardSetModel) Init() tea.Cmd {
	m.loading = true
	m.confirm = nil
	m.status = ""
	m.errMsg = ""
	return m.cmdLoadCards()
}

func (m *CardSetModel) isOwner() bool {
	return m.set.AccessType == models.AccessOwner
}

func (m *CardSetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openCardSetMsg:
		m.set = msg.set
		m.idx = 0
		m.cards = nil
		m.showRequests = false
		m.requests = nil
		return m, m.Init()

	case cardsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.cards = msg.cards
		if m.idx >= len(m.cards) {
			m.idx = max(len(m.cards)-1, 0)
		}
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, m.Init()

	case accessRequestsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.requests = msg.requests
		if m.reqIdx >= len(m.requests) {
			m.reqIdx = max(len(m.requests)-1, 0)
		}
		return m, nil

	case accessChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.message
		if m.showRequests {
			return m, m.cmdLoadRequests()
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m, m.updateConfirm(msg)
		}
		if m.showRequests {
			return m, m.updateRequests(msg)
		}
		return m, m.updateKeys(msg)
	}

	return m, nil
}

func (m *CardSetModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	confirmed := m.confirm.confirmed(msg)
	m.confirm = nil
	if !confirmed || m.idx >= len(m.cards) {
		return nil
	}

	ctx, library, id := m.ctx, m.library, m.cards[m.idx].ID
	return func() tea.Msg {
		return deletedMsg{err: library.DeleteCard(ctx, id)}
	}
}

func (m *CardSetModel) updateRequests(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.access):
		m.showRequests = false
	case key.Matches(msg, keys.up):
		if m.reqIdx > 0 {
			m.reqIdx--
		}
	case key.Matches(msg, keys.down):
		if m.reqIdx < len(m.requests)-1 {
			m.reqIdx++
		}
	case key.Matches(msg, keys.yes):
		return m.cmdRespond(true)
	case key.Matches(msg, keys.no):
		return m.cmdRespond(false)
	case key.Matches(msg, keys.refresh):
		return m.cmdLoadRequests()
	}
	return nil
}

func (m *CardSetModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		return navigate(pageDashboard)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.cards)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		return m.Init()
	case key.Matches(msg, keys.copy):
		if m.idx < len(m.cards) {
			if err := m.copy(m.cards[m.idx].Definition); err != nil {
				m.errMsg = err.Error()
			} else {
				m.errMsg = ""
				m.status = app.MsgCopiedToClipboard
			}
		}
	case key.Matches(msg, keys.add):
		if m.isOwner() {
			return navigateWith(pageAddCard, openCardSetMsg{set: m.set})
		}
	case key.Matches(msg, keys.edit):
		if m.isOwner() && m.idx < len(m.cards) {
			return navigateWith(pageEditCard, editCardMsg{set: m.set, card: m.cards[m.idx]})
		}
	case key.Matches(msg, keys.editSet):
		if m.isOwner() {
			return navigateWith(pageEditSet, openCardSetMsg{set: m.set})
		}
	case key.Matches(msg, keys.delete):
		if m.isOwner() && m.idx < len(m.cards) {
			m.confirm = newConfirm("Delete card \"" + m.cards[m.idx].Term + "\"?")
		}
	case key.Matches(msg, keys.study):
		if len(m.cards) > 0 {
			return navigateWith(pageStudy, openCardSetMsg{set: m.set})
		}
	case key.Matches(msg, keys.access):
		switch m.set.AccessType {
		case models.AccessOwner:
			m.showRequests = true
			m.reqIdx = 0
			return m.cmdLoadRequests()
		case models.AccessPublic:
			ctx, library, id := m.ctx, m.library, m.set.ID
			return func() tea.Msg {
				message, err := library.RequestAccess(ctx, id)
				return accessChangedMsg{message: message, err: err}
			}
		}
	case key.Matches(msg, keys.unlink):
		if m.set.AccessType == models.AccessAccessible {
			ctx, library, id := m.ctx, m.library, m.set.ID
			return func() tea.Msg {
				message, err := library.RevokeAccess(ctx, id)
				return accessChangedMsg{message: message, err: err}
			}
		}
	}

	return nil
}

func (m *CardSetModel) cmdLoadCards() tea.Cmd {
	ctx, library, id := m.ctx, m.library, m.set.ID
	return func() tea.Msg {
		cards, err := library.ListCards(ctx, id)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

func (m *CardSetModel) cmdLoadRequests() tea.Cmd {
	ctx, library, id := m.ctx, m.library, m.set.ID
	return func() tea.Msg {
		requests, err := library.PendingAccessRequests(ctx, id)
		return accessRequestsLoadedMsg{requests: requests, err: err}
	}
}

func (m *CardSetModel) cmdRespond(approve bool) tea.Cmd {
	if m.reqIdx >= len(m.requests) {
		return nil
	}

	ctx, library, setID, reqID := m.ctx, m.library, m.set.ID, m.requests[m.reqIdx].ID
	return func() tea.Msg {
		message, err := library.RespondAccessRequest(ctx, setID, reqID, approve)
		return accessChangedMsg{message: message, err: err}
	}
}

func (m *CardSetModel) View() string {
	var b strings.Builder

	b.WriteString(selectedStyle.Render(m.set.Name))
	b.WriteString("\n")
	if m.set.Description != "" {
		b.WriteString(m.set.Description)
		b.WriteString("\n")
	}
	visibility := "private"
	if m.set.IsPublic {
		visibility = "public"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("by %s │ %s │ %s", valueOrNA(m.set.CreatorName), visibility, m.set.AccessType)))
	b.WriteString("\n\n")

	if m.showRequests {
		m.viewRequests(&b)
	} else {
		m.viewCards(&b)
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CARD SET", strings.TrimRight(b.String(), "\n"), m.help())
}

func (m *CardSetModel) viewCards(b *strings.Builder) {
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.cards) == 0:
		b.WriteString("No cards yet\n")
	default:
		b.WriteString(fmt.Sprintf("  %-24s │ %-36s │ %s\n", "Term", "Definition", "Status"))
		for i, card := range m.cards {
			b.WriteString(fmt.Sprintf("%s%-24s │ %-36s │ %s\n",
				cursor(i == m.idx), fitText(card.Term, 24), fitText(card.Definition, 36), card.Status))
		}
	}
}

func (m *CardSetModel) viewRequests(b *strings.Builder) {
	b.WriteString("Pending access requests\n\n")
	if len(m.requests) == 0 {
		b.WriteString("None\n")
		return
	}
	for i, req := range m.requests {
		b.WriteString(cursor(i == m.reqIdx))
		b.WriteString(req.RequesterUsername)
		b.WriteString("\n")
	}
}

func (m *CardSetModel) help() string {
	if m.showRequests {
		return "y: approve │ n: reject │ r: refresh │ esc: back"
	}

	parts := []string{"c: copy definition", "t: study"}
	switch m.set.AccessType {
	case models.AccessOwner:
		parts = append(parts, "a: add card", "e: edit card", "d: delete card", "E: edit set", "A: access requests")
	case models.AccessPublic:
		parts = append(parts, "A: request access")
	case models.AccessAccessible:
		parts = append(parts, "x: leave")
	}
	parts = append(parts, "esc: back")
	return strings.Join(parts, " │ ")
}
