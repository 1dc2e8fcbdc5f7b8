// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Explicit(t *testing.T) {
	rt, err := Detect("desktop", "1.2.0")
	require.NoError(t, err)
	assert.True(t, rt.IsDesktop())
	assert.Equal(t, runtime.GOOS, rt.Platform)
	assert.Equal(t, "1.2.0", rt.Version)
	assert.Equal(t, "desktop", rt.Namespace())

	rt, err = Detect("web", "1.2.0")
	require.NoError(t, err)
	assert.False(t, rt.IsDesktop())
	assert.Equal(t, "web", rt.Platform)
	assert.Equal(t, "1.2.0-web", rt.Version)
}

func TestDetect_AutoUsesShellVariable(t *testing.T) {
	t.Setenv(DesktopShellEnv, "")
	rt, err := Detect("auto", "")
	require.NoError(t, err)
	assert.Equal(t, ModeWeb, rt.Mode)

	t.Setenv(DesktopShellEnv, "1")
	rt, err = Detect("", "")
	require.NoError(t, err)
	assert.Equal(t, ModeDesktop, rt.Mode)
}

func TestDetect_Unknown(t *testing.T) {
	_, err := Detect("tablet", "")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
