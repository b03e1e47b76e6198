// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the optional status server of go-dav-sync.
//
// The server serves until its context is canceled and then shuts down
// gracefully.
package server
