// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import "errors"

var (
	// ErrUnknownMode is returned by Detect for an unsupported mode string.
	ErrUnknownMode = errors.New("unknown execution mode")
	// ErrNoProbeAddress is returned when a network monitor has nothing to dial.
	ErrNoProbeAddress = errors.New("network probe address is not configured")
)
