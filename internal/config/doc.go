// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the intellicard client binaries.
//
// Configuration is assembled from multiple sources. The first source that
// provides a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the interactive client and
// [GetStructuredConfigWith] plus [NewClientConfig] for tools that parse their
// own command line.
package config
