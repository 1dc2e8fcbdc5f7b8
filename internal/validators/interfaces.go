// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides form-layer validation for the data the user
// types into the client: registration and login forms, card sets and cards,
// and study review answers.
//
// Rules live in the `validate` struct tags of the models package and are
// checked with go-playground/validator. Failures come back as a
// *[ValidationError] whose messages are ready to show next to the form field.
//
// Validation happens only where a person enters data. The sync service copies
// records between backends as they are and never validates them.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator checks a form value.
type Validator interface {
	// Validate validates obj and optionally restricts validation to the
	// named struct fields.
	Validate(ctx context.Context, obj any, fields ...string) error
}
