// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// knownMessages holds the wording the forms show for specific field rules.
var knownMessages = map[string]string{
	"fullName.required":        "Full name is required",
	"username.required":        "Username is required",
	"username.min":             "Username must be at least 3 characters",
	"email.required":           "Email is required",
	"email.email":              "Please enter a valid email address",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords do not match",
	"name.required":            "Card set name is required",
	"term.required":            "Term is required",
	"definition.required":      "Definition is required",
	"difficulty.min":           "Difficulty must be between 1 and 5",
	"difficulty.max":           "Difficulty must be between 1 and 5",
}

func formatFieldError(err validator.FieldError) string {
	if msg, ok := knownMessages[err.Field()+"."+err.Tag()]; ok {
		return msg
	}

	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q is not a valid email", field)
	case "max":
		if isNumber(err.Kind()) {
			return fmt.Sprintf("%q must be less than or equal to %s", field, err.Param())
		}
		return fmt.Sprintf("%q length must be less than or equal to %s %s", field, err.Param(), plural("character", err.Param()))
	case "min":
		if isNumber(err.Kind()) {
			return fmt.Sprintf("%q must be greater than or equal to %s", field, err.Param())
		}
		return fmt.Sprintf("%q length must be greater than or equal to %s %s", field, err.Param(), plural("character", err.Param()))
	case "eqfield":
		return fmt.Sprintf("%q must match %s", field, strings.ToLower(err.Param()))
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

func isNumber(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func plural(word, count string) string {
	if count == "1" {
		return word
	}
	return word + "s"
}
