// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the key/value stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when the key has no value in the
	// store's namespace.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptedValue is returned when a stored value cannot be decoded
	// into the expected shape.
	ErrCorruptedValue = errors.New("stored value is corrupted")

	// ErrUnknownDriver is returned by NewClientStorages for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrEmptyNamespace is returned when a store is created without a
	// namespace.
	ErrEmptyNamespace = errors.New("storage namespace is empty")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
