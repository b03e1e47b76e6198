// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Acquisition errors returned by [ProviderResolver.Acquire]. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrPermissionDenied is returned when the caller is not allowed to use
	// the local store of an authority, either because the authority is not
	// granted or because the database refused access.
	ErrPermissionDenied = errors.New("permission denied for authority")

	// ErrProviderUnavailable is returned when no session can be provided
	// because the authority is unknown, disabled, or the database cannot be
	// reached at all.
	ErrProviderUnavailable = errors.New("local store provider unavailable")
)

// Session errors.
var (
	// ErrConnectionLost wraps driver errors indicating that the connection
	// backing a session died. Such failures are expected to be transient.
	ErrConnectionLost = errors.New("local store connection lost")

	// ErrAccountRemoved is returned when the account a session operates on
	// no longer exists, typically because it was removed while a sync was
	// running.
	ErrAccountRemoved = errors.New("account was removed")

	// ErrSessionClosed is returned by session operations after Close.
	ErrSessionClosed = errors.New("session is closed")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
