// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into status API
// error responses.
package app

const (
	// MsgInternalServerError is returned for failures the caller cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgStoreUnavailable is returned when the local store cannot be
	// reached or its connection was lost.
	MsgStoreUnavailable = "local store unavailable"

	// MsgStoreAccessDenied is returned when the local store refuses access.
	MsgStoreAccessDenied = "access to local store denied"
)
