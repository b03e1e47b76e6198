// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across go-dav-sync: run
// identifiers carried in a context, UUID generation and JSON responses for
// the status server.
package utils
