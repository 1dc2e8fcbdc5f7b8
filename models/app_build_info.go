// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into the client and
// syncctl binaries by -ldflags. Missing values read as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Released reports whether a real version was stamped.
func (a AppBuildInfo) Released() bool {
	return a.Version != "" && a.Version != notAvailable
}

// String renders the one-line form used by `syncctl --version`.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orNotAvailable(a.Version), orNotAvailable(a.Date), orNotAvailable(a.Commit))
}

// Lines renders the multi-line banner printed on client start.
func (a AppBuildInfo) Lines() []string {
	return []string{
		"Build version: " + orNotAvailable(a.Version),
		"Build date: " + orNotAvailable(a.Date),
		"Build commit: " + orNotAvailable(a.Commit),
	}
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
