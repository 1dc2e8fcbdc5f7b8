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
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regFullName = iota
	regUsername
	regEmail
	regPassword
	regConfirm
)

var registerLabels = []string{"Full name", "Username", "Email", "Password", "Confirm"}

type usernameCheckedMsg struct {
	username  string
	available bool
}

// RegisterModel is the Bubble Tea model for the registration screen. The
// username availability is checked whenever focus leaves the username field.
// On success the model resets the form and opens the login page.
type RegisterModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	checked   string
	available bool
}

// NewRegisterModel creates a [RegisterModel] with five pre-configured text inputs.
func NewRegisterModel(ctx context.Context, session service.SessionService) *RegisterModel {
	fields := []textinput.Model{
		newInput("full name", 128),
		newInput("username", 64),
		newInput("email", 254),
		newPasswordInput("password"),
		newPasswordInput("repeat password"),
	}
	fields[regFullName].Focus()

	return &RegisterModel{
		ctx:     ctx,
		session: session,
		inputs:  fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registeredMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }

	case usernameCheckedMsg:
		if msg.username == strings.TrimSpace(m.inputs[regUsername].Value()) {
			m.checked = msg.username
			m.available = msg.available
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "enter":
			if m.submitting {
				return m, nil
			}
			req := m.request()
			if req.Password != req.ConfirmPassword {
				m.errMsg = "Passwords do not match"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for i, label := range registerLabels {
		b.WriteString(fmt.Sprintf("%-11s│ [", label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("]")
		if i == regUsername {
			b.WriteString(" ")
			b.WriteString(m.usernameHint())
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) usernameHint() string {
	username := strings.TrimSpace(m.inputs[regUsername].Value())
	if username == "" || username != m.checked {
		return ""
	}
	if m.available {
		return successStyle.Render("available")
	}
	return errorStyle.Render(app.MsgUsernameNotAvailable)
}

// moveFocus shifts focus by delta and starts the availability check when
// focus leaves the username field.
func (m *RegisterModel) moveFocus(delta int) tea.Cmd {
	left := m.focus
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	focusInputs(m.inputs, m.focus)

	if left != regUsername {
		return nil
	}
	username := strings.TrimSpace(m.inputs[regUsername].Value())
	if username == "" || username == m.checked {
		return nil
	}

	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return usernameCheckedMsg{username: username, available: session.CheckUsername(ctx, username)}
	}
}

func (m *RegisterModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		FullName:        strings.TrimSpace(m.inputs[regFullName].Value()),
		Username:        strings.TrimSpace(m.inputs[regUsername].Value()),
		Email:           strings.TrimSpace(m.inputs[regEmail].Value()),
		Password:        m.inputs[regPassword].Value(),
		ConfirmPassword: m.inputs[regConfirm].Value(),
	}
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return registeredMsg{username: req.Username, err: session.Register(ctx, req)}
	}
}

func (m *RegisterModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focus = 0
	focusInputs(m.inputs, 0)
	m.submitting = false
	m.errMsg = ""
	m.checked = ""
}
