// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a yes/no overlay shown before destructive actions.
type confirmModel struct {
	message string
}

func newConfirm(message string) *confirmModel {
	return &confirmModel{message: message}
}

// confirmed reports whether msg accepts the action. Any other key cancels.
func (m *confirmModel) confirmed(msg tea.KeyMsg) bool {
	return key.Matches(msg, keys.yes)
}

func (m *confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}
