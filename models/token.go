// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Token is a bearer token issued by a backend's /auth/login endpoint.
//
// SignedString is the value sent in the Authorization header and stored on
// the client. Subject and ExpiresAt are informational copies of the "sub"
// and "exp" claims when the token is a JWT; both stay zero for opaque tokens.
// The client never verifies the signature: the backend that issued the token
// is the only party that can.
type Token struct {
	// SignedString is the compact token representation.
	SignedString string `json:"-"`

	// Subject is the "sub" claim, usually the username.
	Subject string `json:"-"`

	// ExpiresAt is the "exp" claim, nil when absent.
	ExpiresAt *time.Time `json:"-"`
}

// String returns the raw bearer value.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Expired reports whether the token carries an expiry that is before now.
// Tokens without an expiry never report as expired; the backend remains the
// authority and a 401/403 is the only reliable signal.
func (t Token) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}
