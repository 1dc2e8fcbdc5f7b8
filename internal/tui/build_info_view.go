// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/intellicard-client/internal/environment"
	"github.com/MKhiriev/intellicard-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, rt environment.Runtime, unavailable []models.UnavailableFeature) string {
	var b strings.Builder

	b.WriteString("Application: intellicard\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit)
	b.WriteString("\n")
	b.WriteString("Mode: ")
	b.WriteString(string(rt.Mode))
	b.WriteString(" (")
	b.WriteString(valueOrNA(rt.Platform))
	b.WriteString(")")

	if len(unavailable) > 0 {
		b.WriteString("\n\nUnavailable features:")
		for _, f := range unavailable {
			b.WriteString("\n  ")
			b.WriteString(f.Description)
			b.WriteString(" - ")
			b.WriteString(f.Reason)
		}
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
