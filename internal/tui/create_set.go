// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/intellicard-client/internal/service"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	setFieldName = iota
	setFieldDescription
	setFieldPublic
	setFieldCount
)

// CreateSetModel is the card-set form. The third row is a public/private
// toggle switched with space. Built with [NewEditSetModel] it edits the set
// delivered by openCardSetMsg instead of creating one.
type CreateSetModel struct {
	ctx     context.Context
	library service.LibraryService

	editing bool
	set     models.CardSet
	loading bool

	name        textinput.Model
	description textinput.Model
	public      bool
	focus       int
	submitting  bool
	errMsg      string
}

func NewCreateSetModel(ctx context.Context, library service.LibraryService) *CreateSetModel {
	return &CreateSetModel{
		ctx:         ctx,
		library:     library,
		name:        newInput("name", 255),
		description: newInput("description (optional)", 1000),
	}
}

func NewEditSetModel(ctx context.Context, library service.LibraryService) *CreateSetModel {
	m := NewCreateSetModel(ctx, library)
	m.editing = true
	return m
}

func (m *CreateSetModel) Init() tea.Cmd {
	m.fill(models.CardSetInput{})
	m.submitting = false
	m.loading = false
	m.errMsg = ""
	m.setFocus(setFieldName)
	return textinput.Blink
}

func (m *CreateSetModel) fill(in models.CardSetInput) {
	m.name.SetValue(in.Name)
	m.description.SetValue(in.Description)
	m.public = in.IsPublic
}

// back leaves the form for the page it was opened from.
func (m *CreateSetModel) back() tea.Cmd {
	if m.editing {
		return navigateWith(pageCardSet, openCardSetMsg{set: m.set})
	}
	return navigate(pageDashboard)
}

func (m *CreateSetModel) setFocus(idx int) {
	m.focus = idx
	m.name.Blur()
	m.description.Blur()
	switch idx {
	case setFieldName:
		m.name.Focus()
	case setFieldDescription:
		m.description.Focus()
	}
}

func (m *CreateSetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openCardSetMsg:
		if !m.editing {
			return m, nil
		}
		m.set = msg.set
		m.Init()
		m.fill(msg.set.Input())
		m.loading = true
		return m, tea.Batch(textinput.Blink, m.cmdFetch())

	case cardSetFetchedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		access := m.set.AccessType
		m.set = msg.set
		if m.set.AccessType == "" {
			m.set.AccessType = access
		}
		m.fill(msg.set.Input())
		return m, nil

	case cardSetSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		set := msg.set
		if set.AccessType == "" {
			set.AccessType = models.AccessOwner
		}
		return m, navigateWith(pageCardSet, openCardSetMsg{set: set})

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, m.back()
		case "tab", "down":
			m.setFocus((m.focus + 1) % setFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + setFieldCount) % setFieldCount)
			return m, nil
		case " ":
			if m.focus == setFieldPublic {
				m.public = !m.public
				return m, nil
			}
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case setFieldName:
		m.name, cmd = m.name.Update(msg)
	case setFieldDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m *CreateSetModel) cmdFetch() tea.Cmd {
	ctx, library, id := m.ctx, m.library, m.set.ID
	return func() tea.Msg {
		set, err := library.GetCardSet(ctx, id)
		return cardSetFetchedMsg{set: set, err: err}
	}
}

func (m *CreateSetModel) submit() tea.Cmd {
	if m.submitting || m.loading {
		return nil
	}

	in := models.CardSetInput{
		Name:        strings.TrimSpace(m.name.Value()),
		Description: strings.TrimSpace(m.description.Value()),
		IsPublic:    m.public,
	}
	if in.Name == "" {
		m.errMsg = "Name is required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	ctx, library := m.ctx, m.library
	if m.editing {
		id := m.set.ID
		return func() tea.Msg {
			set, err := library.UpdateCardSet(ctx, id, in)
			return cardSetSavedMsg{set: set, err: err}
		}
	}
	return func() tea.Msg {
		set, err := library.CreateCardSet(ctx, in)
		return cardSetSavedMsg{set: set, err: err}
	}
}

func (m *CreateSetModel) View() string {
	var b strings.Builder
	b.WriteString("Name         │ [")
	b.WriteString(m.name.View())
	b.WriteString("]\n")
	b.WriteString("Description  │ [")
	b.WriteString(m.description.View())
	b.WriteString("]\n")

	toggle := "[ ] public"
	if m.public {
		toggle = "[x] public"
	}
	if m.focus == setFieldPublic {
		toggle = selectedStyle.Render(toggle)
	}
	b.WriteString("Visibility   │ ")
	b.WriteString(toggle)
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("\n[Loading...]\n")
	case m.submitting:
		b.WriteString("\n[Saving...]\n")
	case m.editing:
		b.WriteString("\n[Save]\n")
	default:
		b.WriteString("\n[Create]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	if m.editing {
		return renderPage("EDIT CARD SET", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ space: toggle public │ enter: save")
	}
	return renderPage("NEW CARD SET", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ space: toggle public │ enter: create")
}
