// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/MKhiriev/intellicard-client/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by Validate for partial validation. They are the Go
// struct field names of the models.
const (
	FieldName       = "Name"
	FieldTerm       = "Term"
	FieldDefinition = "Definition"
	FieldUsername   = "Username"
	FieldPassword   = "Password"
	FieldEmail      = "Email"
	FieldDifficulty = "Difficulty"
)

// FormValidator validates the client's form models.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator constructs a FormValidator. Reported field names are the
// JSON names of the model fields; fields hidden from JSON are reported in
// lower camel case.
func NewFormValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return lowerFirst(fld.Name)
		}
		return name
	})

	return &FormValidator{validate: validate}
}

// Validate implements [Validator]. Supported types are models.CardInput,
// models.CardSetInput, models.Credentials, models.RegisterRequest and
// models.Review, as values or pointers. Strings are checked with surrounding
// whitespace removed, so a term of only spaces is treated as empty.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CardInput:
		value.Term = strings.TrimSpace(value.Term)
		value.Definition = strings.TrimSpace(value.Definition)
		return v.check(&value, fields)
	case *models.CardInput:
		return v.Validate(ctx, *value, fields...)

	case models.CardSetInput:
		value.Name = strings.TrimSpace(value.Name)
		return v.check(&value, fields)
	case *models.CardSetInput:
		return v.Validate(ctx, *value, fields...)

	case models.Credentials:
		value.Username = strings.TrimSpace(value.Username)
		return v.check(&value, fields)
	case *models.Credentials:
		return v.Validate(ctx, *value, fields...)

	case models.RegisterRequest:
		value.FullName = strings.TrimSpace(value.FullName)
		value.Username = strings.TrimSpace(value.Username)
		value.Email = strings.TrimSpace(value.Email)
		return v.check(&value, fields)
	case *models.RegisterRequest:
		return v.Validate(ctx, *value, fields...)

	case models.Review:
		return v.check(&value, fields)
	case *models.Review:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) check(obj any, fields []string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(obj)
	} else {
		err = v.validate.StructPartial(obj, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: formatFieldError(fe),
		})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
