// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"time"
)

// FormatLastSync renders the age of a sync timestamp for the status panel:
// "Never", "Just now", "5m ago", "3h ago", "2d ago", and a plain date after
// a week.
func FormatLastSync(lastSync *time.Time, now time.Time) string {
	if lastSync == nil {
		return "Never"
	}

	diff := now.Sub(*lastSync)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	default:
		return lastSync.Local().Format("2006-01-02")
	}
}
