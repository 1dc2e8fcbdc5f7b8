// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewCorrelationID returns a time-ordered UUIDv7 string that ties together
// the log lines of one request or one sync run. A clock failure falls back
// to a random v4.
func NewCorrelationID() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
