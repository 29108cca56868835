// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPreferenceAbsent is returned when the preference store holds no
	// value for the requested key.
	ErrPreferenceAbsent = errors.New("preference is not set")

	// ErrRunNotFound is returned when no history run has the requested ID.
	ErrRunNotFound = errors.New("propagation run was not found")

	// ErrInvalidProfileFile is returned when a profiles or export file cannot
	// be decoded.
	ErrInvalidProfileFile = errors.New("invalid profile file")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
