// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environment detects the execution context of the client (desktop
// shell or plain web profile), tracks connectivity and derives the feature
// flags that depend on both.
package environment

import (
	"fmt"
	"os"
	"runtime"
)

// DesktopShellEnv is set by the desktop launcher when it starts the client
// next to a local backend.
const DesktopShellEnv = "INTELLICARD_DESKTOP_SHELL"

// Mode is the resolved execution mode.
type Mode string

const (
	ModeDesktop Mode = "desktop"
	ModeWeb     Mode = "web"
)

// Runtime describes where the client runs.
type Runtime struct {
	Mode     Mode
	Platform string
	Version  string
}

// IsDesktop reports whether the desktop-only capabilities (local backend,
// cloud sync) are available.
func (r Runtime) IsDesktop() bool {
	return r.Mode == ModeDesktop
}

// Namespace is the storage namespace for this runtime. Desktop and web
// profiles never share keys.
func (r Runtime) Namespace() string {
	return string(r.Mode)
}

// Detect resolves the requested mode ("desktop", "web", "auto" or empty)
// into a Runtime. In auto mode the client is desktop when the launcher has
// set [DesktopShellEnv]. version is reported as-is on desktop; web builds
// append the "-web" suffix.
func Detect(requested, version string) (Runtime, error) {
	var mode Mode
	switch requested {
	case string(ModeDesktop):
		mode = ModeDesktop
	case string(ModeWeb):
		mode = ModeWeb
	case "", "auto":
		mode = ModeWeb
		if os.Getenv(DesktopShellEnv) != "" {
			mode = ModeDesktop
		}
	default:
		return Runtime{}, fmt.Errorf("%w: %q", ErrUnknownMode, requested)
	}

	rt := Runtime{Mode: mode, Platform: "web", Version: version}
	if mode == ModeDesktop {
		rt.Platform = runtime.GOOS
	} else if version != "" {
		rt.Version = version + "-web"
	}

	return rt, nil
}
