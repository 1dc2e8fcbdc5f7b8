// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "  ", "")

	assert.False(t, info.Released())
	assert.Equal(t, "N/A (N/A, N/A)", info.String())
	assert.Equal(t, []string{"Build version: N/A", "Build date: N/A", "Build commit: N/A"}, info.Lines())
}

func TestAppBuildInfo_Stamped(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")

	assert.True(t, info.Released())
	assert.Equal(t, "1.4.0 (2026-10-01, abc123)", info.String())
}
