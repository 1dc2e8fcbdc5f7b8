// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	ErrInvalidToken             = errors.New("invalid token")
	ErrInvalidCredentials       = errors.New("Invalid credentials")
	ErrUsernameTaken            = errors.New("Username already exists")
	ErrCardSetNotFound          = errors.New("Card set not found")
	ErrCardNotFound             = errors.New("Card not found")
	ErrAccessRequestNotFound    = errors.New("Access request not found")
	ErrAccessDenied             = errors.New("Access denied")
	ErrInvalidID                = errors.New("invalid id")
	ErrInvalidBody              = errors.New("invalid request body")
)
