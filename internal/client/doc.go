// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the intellicard terminal client. [NewApp] opens
// the key/value store for the detected runtime, builds the local and cloud
// backend adapters with the session and sync services, and [App.Run] starts
// the status and network workers before handing the terminal to the TUI.
package client
