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

const cardFieldLimit = 255

// AddCardModel is the form that appends a card to the open card set. Built
// with [NewEditCardModel] it rewrites the card delivered by editCardMsg.
type AddCardModel struct {
	ctx     context.Context
	library service.LibraryService

	set        models.CardSet
	card       *models.Card
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewAddCardModel(ctx context.Context, library service.LibraryService) *AddCardModel {
	return &AddCardModel{
		ctx:     ctx,
		library: library,
		inputs: []textinput.Model{
			newInput("term", cardFieldLimit),
			newInput("definition", cardFieldLimit),
		},
	}
}

func NewEditCardModel(ctx context.Context, library service.LibraryService) *AddCardModel {
	m := NewAddCardModel(ctx, library)
	m.card = &models.Card{}
	return m
}

func (m *AddCardModel) editing() bool {
	return m.card != nil
}

func (m *AddCardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AddCardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openCardSetMsg:
		if m.editing() {
			return m, nil
		}
		m.set = msg.set
		m.reset()
		return m, textinput.Blink

	case editCardMsg:
		if !m.editing() {
			return m, nil
		}
		m.set = msg.set
		card := msg.card
		m.card = &card
		m.reset()
		m.inputs[0].SetValue(card.Term)
		m.inputs[1].SetValue(card.Definition)
		return m, textinput.Blink

	case cardSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, navigateWith(pageCardSet, openCardSetMsg{set: m.set})

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.reset()
			return m, navigateWith(pageCardSet, openCardSetMsg{set: m.set})
		case "tab", "down":
			m.focus = (m.focus + 1) % len(m.inputs)
			focusInputs(m.inputs, m.focus)
			return m, nil
		case "shift+tab", "up":
			m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			focusInputs(m.inputs, m.focus)
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focus++
				focusInputs(m.inputs, m.focus)
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AddCardModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	in := models.CardInput{
		Term:       strings.TrimSpace(m.inputs[0].Value()),
		Definition: strings.TrimSpace(m.inputs[1].Value()),
	}
	if in.Term == "" || in.Definition == "" {
		m.errMsg = "Term and definition are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	ctx, library, setID := m.ctx, m.library, m.set.ID
	if m.editing() {
		cardID := m.card.ID
		return func() tea.Msg {
			_, err := library.UpdateCard(ctx, cardID, in)
			return cardSavedMsg{err: err}
		}
	}
	return func() tea.Msg {
		_, err := library.CreateCard(ctx, setID, in)
		return cardSavedMsg{err: err}
	}
}

func (m *AddCardModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focus = 0
	focusInputs(m.inputs, 0)
	m.submitting = false
	m.errMsg = ""
}

func (m *AddCardModel) View() string {
	var b strings.Builder
	b.WriteString("Card set: ")
	b.WriteString(selectedStyle.Render(m.set.Name))
	b.WriteString("\n\n")
	b.WriteString("Term        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Definition  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	switch {
	case m.submitting:
		b.WriteString("\n[Saving...]\n")
	case m.editing():
		b.WriteString("\n[Save]\n")
	default:
		b.WriteString("\n[Add card]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	title := "ADD CARD"
	if m.editing() {
		title = "EDIT CARD"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
