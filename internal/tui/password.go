// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoProgram = errors.New("terminal UI is not running")

type passwordRequestMsg struct {
	username string
	reply    chan<- string
}

// PasswordBridge answers password prompts with a modal dialog in the
// running program.
type PasswordBridge struct {
	programRef
}

func NewPasswordBridge() *PasswordBridge {
	return &PasswordBridge{}
}

// Prompt opens the password modal and blocks until the user confirms or
// cancels it, or ctx is done. A cancelled modal yields an empty password.
func (b *PasswordBridge) Prompt(ctx context.Context, username string) (string, error) {
	reply := make(chan string, 1)
	if !b.send(passwordRequestMsg{username: username, reply: reply}) {
		return "", errNoProgram
	}

	select {
	case password := <-reply:
		return password, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// passwordModal collects the cloud password for one prompt.
type passwordModal struct {
	username string
	input    textinput.Model
	reply    chan<- string
}

func newPasswordModal(req passwordRequestMsg) *passwordModal {
	in := newPasswordInput("password")
	in.Focus()
	return &passwordModal{username: req.username, input: in, reply: req.reply}
}

// Update handles a key. It reports true once the modal has answered.
func (m *passwordModal) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.reply <- m.input.Value()
		return true, nil
	case "esc":
		m.reply <- ""
		return true, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return false, cmd
}

// Cancel answers with an empty password.
func (m *passwordModal) Cancel() {
	m.reply <- ""
}

func (m *passwordModal) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cloud sync"))
	b.WriteString("\n\nEnter the cloud password for ")
	b.WriteString(selectedStyle.Render(m.username))
	b.WriteString(":\n\n[")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")
	b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
