// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/intellicard-client/models"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	loadingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	// access column colours on the dashboard
	accessStyles = map[models.AccessType]lipgloss.Style{
		models.AccessOwner:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		models.AccessAccessible: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		models.AccessPublic:     lipgloss.NewStyle().Faint(true),
	}
)

func renderError(msg string) string {
	return errorStyle.Render("Error: " + msg)
}

// renderAccess pads before colouring so escape codes do not break the column.
func renderAccess(access models.AccessType, width int) string {
	return accessStyles[access].Width(width).Render(fitText(string(access), width))
}
