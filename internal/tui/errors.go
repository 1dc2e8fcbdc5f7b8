// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/intellicard-client/internal/service"
)

// ErrUserQuit is returned by Run when the user closed the program.
var ErrUserQuit = errors.New("user quit")

const msgBackendUnavailable = "No network connection or the server is unavailable"

// humanizeError returns the text shown for err on a page.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgBackendUnavailable
	}

	return service.UserMessage(err)
}
