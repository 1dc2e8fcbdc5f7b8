// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/app"
)

// Precondition errors: the operation never starts.
var (
	ErrDesktopOnly          = errors.New("sync is only available in the desktop app")
	ErrOffline              = errors.New("internet connection required for sync")
	ErrSyncInProgress       = errors.New("sync already in progress")
	ErrPasswordPromptNotSet = errors.New("password prompt not set")
	ErrNoStoredUser         = errors.New("no user found, please login first")
)

// Cloud authentication errors: the whole sync operation is aborted.
var (
	ErrPasswordRequired = errors.New("password required for cloud sync")
	ErrCloudAuthFailed  = errors.New("failed to authenticate with cloud, please check your credentials")
)

// Session errors.
var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrLoginFailed          = errors.New("login failed")
	ErrRegisterFailed       = errors.New("registration failed")
	ErrUsernameNotAvailable = errors.New("username is not available")
)

// UserError pairs an error with the message to show for it.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// IsAuthFailure reports whether err is a cloud authentication failure: a
// missing user, a missing or refused password, or an unset prompt.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrPasswordRequired) ||
		errors.Is(err, ErrCloudAuthFailed) ||
		errors.Is(err, ErrPasswordPromptNotSet) ||
		errors.Is(err, ErrNoStoredUser)
}

// UserMessage returns the text to show the user for err.
func UserMessage(err error) string {
	var userErr *UserError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &userErr):
		return userErr.Message
	case errors.Is(err, ErrSyncInProgress):
		return app.MsgSyncInProgress
	case errors.Is(err, ErrOffline):
		return app.MsgInternetRequired
	case errors.Is(err, ErrDesktopOnly):
		return app.MsgDesktopOnly
	case errors.Is(err, ErrNoStoredUser):
		return app.MsgNoStoredUser
	case errors.Is(err, ErrPasswordPromptNotSet):
		return app.MsgPasswordPromptUnset
	case errors.Is(err, ErrPasswordRequired):
		return app.MsgPasswordRequired
	case errors.Is(err, ErrCloudAuthFailed):
		return app.MsgCloudAuthFailed
	case errors.Is(err, ErrUsernameNotAvailable):
		return app.MsgUsernameNotAvailable
	default:
		return adapter.BackendMessage(err, err.Error())
	}
}
