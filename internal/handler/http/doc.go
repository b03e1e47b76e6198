// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the read-only status API of go-dav-sync.
//
// It reports when collections were last synchronized and exposes the
// prometheus collectors of the sync pass. Every request gets a trace ID and
// an access log line before it reaches a route handler.
package http
