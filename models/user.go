// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the signed-in identity persisted by the client under the "user"
// storage key. Only the username is kept: it is all the cloud login needs.
type User struct {
	Username string `json:"username"`
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`

	// ConfirmPassword is checked client-side and never sent.
	ConfirmPassword string `json:"-" validate:"required,eqfield=Password"`
}
