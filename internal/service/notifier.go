// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Loading(string, string) {}
func (NopNotifier) Dismiss(string)         {}
func (NopNotifier) Success(string)         {}
func (NopNotifier) Error(string)           {}
