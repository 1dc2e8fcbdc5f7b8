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
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var dashboardFilters = []models.CardSetFilter{
	models.FilterAll,
	models.FilterOwned,
	models.FilterShared,
	models.FilterPublic,
}

// DashboardModel lists the card sets reachable by the signed-in user.
type DashboardModel struct {
	ctx     context.Context
	session service.SessionService
	library service.LibraryService

	filter    int
	search    textinput.Model
	searching bool
	query     string

	sets    []models.CardSet
	idx     int
	loading bool
	confirm *confirmModel
	errMsg  string
}

func NewDashboardModel(ctx context.Context, session service.SessionService, library service.LibraryService) *DashboardModel {
	return &DashboardModel{
		ctx:     ctx,
		session: session,
		library: library,
		search:  newInput("search by name or description", 100),
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.confirm = nil
	return m.cmdLoad()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cardSetsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.sets = msg.sets
		if m.idx >= len(m.sets) {
			m.idx = max(len(m.sets)-1, 0)
		}
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, m.Init()

	case tea.KeyMsg:
		if m.searching {
			return m, m.updateSearch(msg)
		}
		if m.confirm != nil {
			return m, m.updateConfirm(msg)
		}
		return m, m.updateKeys(msg)
	}

	return m, nil
}

func (m *DashboardModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.query = strings.TrimSpace(m.search.Value())
		return m.Init()
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.query)
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *DashboardModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	confirmed := m.confirm.confirmed(msg)
	m.confirm = nil
	if !confirmed {
		return nil
	}

	set, ok := m.current()
	if !ok {
		return nil
	}
	ctx, library := m.ctx, m.library
	return func() tea.Msg {
		return deletedMsg{err: library.DeleteCardSet(ctx, set.ID)}
	}
}

func (m *DashboardModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.sets)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.tab):
		m.filter = (m.filter + 1) % len(dashboardFilters)
		m.idx = 0
		return m.Init()
	case key.Matches(msg, keys.backtab):
		m.filter = (m.filter - 1 + len(dashboardFilters)) % len(dashboardFilters)
		m.idx = 0
		return m.Init()
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.Focus()
		return textinput.Blink
	case key.Matches(msg, keys.refresh):
		return m.Init()
	case key.Matches(msg, keys.enter):
		if set, ok := m.current(); ok {
			return navigateWith(pageCardSet, openCardSetMsg{set: set})
		}
	case key.Matches(msg, keys.newItem):
		return navigate(pageCreateSet)
	case key.Matches(msg, keys.sync):
		if !m.session.IsDesktop() {
			m.errMsg = app.MsgDesktopOnly
			return nil
		}
		return navigate(pageSync)
	case key.Matches(msg, keys.delete):
		if set, ok := m.current(); ok && set.AccessType == models.AccessOwner {
			m.confirm = newConfirm("Delete \"" + set.Name + "\" and all its cards?")
		}
	case key.Matches(msg, keys.logout):
		ctx, session := m.ctx, m.session
		return func() tea.Msg {
			_ = session.Logout(ctx)
			return loggedOutMsg{}
		}
	case msg.String() == "q":
		return tea.Quit
	}

	return nil
}

func (m *DashboardModel) current() (models.CardSet, bool) {
	if m.idx < 0 || m.idx >= len(m.sets) {
		return models.CardSet{}, false
	}
	return m.sets[m.idx], true
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx, library := m.ctx, m.library
	filter, query := dashboardFilters[m.filter], m.query

	return func() tea.Msg {
		sets, err := library.ListCardSets(ctx, filter, query)
		return cardSetsLoadedMsg{sets: sets, err: err}
	}
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if user, ok := m.session.CurrentUser(); ok {
		b.WriteString("Signed in as ")
		b.WriteString(selectedStyle.Render(user.Username))
		b.WriteString("\n\n")
	}

	b.WriteString("Filter: ")
	for i, f := range dashboardFilters {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if i == m.filter {
			label = selectedStyle.Render("[" + label + "]")
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Search: [")
		b.WriteString(m.search.View())
		b.WriteString("]\n")
	} else if m.query != "" {
		b.WriteString("Search: ")
		b.WriteString(m.query)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.sets) == 0:
		b.WriteString("No card sets\n")
	default:
		b.WriteString(fmt.Sprintf("  %-32s │ %-10s │ %s\n", "Name", "Access", "Cards"))
		for i, set := range m.sets {
			name := fitText(set.Name, 32)
			if set.IsPublic {
				name = fitText(set.Name, 29) + " ◦"
			}
			b.WriteString(fmt.Sprintf("%s%-32s │ %s │ %d\n", cursor(i == m.idx), name, renderAccess(set.AccessType, 10), set.TotalCards))
		}
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	help := "enter: open │ tab: filter │ /: search │ n: new set │ d: delete │ r: refresh │ L: log out"
	if m.session.IsDesktop() {
		help += " │ s: sync"
	}
	return renderPage("CARD SETS", strings.TrimRight(b.String(), "\n"), help)
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func navigateWith(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
